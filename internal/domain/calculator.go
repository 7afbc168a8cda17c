package domain

// ExperienceLevel describes a grower skill tier and its defaults
type ExperienceLevel struct {
	ID                    string   `json:"id"`
	Label                 string   `json:"label"`
	DefaultSubstrateRatio int      `json:"default_substrate_ratio"`
	Description           string   `json:"description"`
	Recommendations       []string `json:"recommendations"`
}

// SubstrateIngredient is one component of a substrate mix with its
// share of the total substrate volume
type SubstrateIngredient struct {
	Ingredient string  `json:"ingredient"`
	Ratio      float64 `json:"ratio"`
	Unit       string  `json:"unit"`
}

// SubstrateType describes a substrate recipe
type SubstrateType struct {
	ID          string                `json:"id"`
	Label       string                `json:"label"`
	Composition []SubstrateIngredient `json:"composition"`
	Description string                `json:"description"`
	Benefits    []string              `json:"benefits"`
}

// ContainerSize is a selectable growing container option
type ContainerSize struct {
	Size        int    `json:"size"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// CalculatorInput holds the user's calculator selections
type CalculatorInput struct {
	ExperienceLevel string  `json:"experience_level"`
	SpawnAmount     float64 `json:"spawn_amount"`
	SubstrateRatio  int     `json:"substrate_ratio"`
	SubstrateType   string  `json:"substrate_type"`
	ContainerSize   float64 `json:"container_size"`
}

// IngredientAmount is a computed per-ingredient quantity
type IngredientAmount struct {
	Ingredient string `json:"ingredient"`
	Amount     string `json:"amount"`
	Unit       string `json:"unit"`
}

// CalculatorResult holds the computed mix values, formatted to one
// decimal place the way the UI displays them
type CalculatorResult struct {
	SpawnAmount          float64            `json:"spawn_amount"`
	SubstrateVolume      string             `json:"substrate_volume"`
	TotalMixVolume       string             `json:"total_mix_volume"`
	ContainerFill        string             `json:"container_fill"`
	OptimalMonotubVolume string             `json:"optimal_monotub_volume"`
	Ingredients          []IngredientAmount `json:"ingredients"`
}

// ExperienceLevels lists the supported grower tiers with their static
// recommendations
var ExperienceLevels = []ExperienceLevel{
	{
		ID:                    "beginner",
		Label:                 "Beginner",
		DefaultSubstrateRatio: 2,
		Description:           "New to cultivation with limited experience",
		Recommendations: []string{
			"Start with lower substrate ratios (1:1 to 1:2)",
			"Use simple substrate mixes like CVG",
			"Focus on sterile technique and contamination prevention",
			"Begin with more forgiving mushroom species",
		},
	},
	{
		ID:                    "intermediate",
		Label:                 "Intermediate",
		DefaultSubstrateRatio: 3,
		Description:           "Some successful grows with basic understanding",
		Recommendations: []string{
			"Experiment with substrate ratios between 1:2 and 1:4",
			"Try different substrate formulations",
			"Consider more advanced techniques like agar work",
			"Optimize fruiting conditions for better yields",
		},
	},
	{
		ID:                    "expert",
		Label:                 "Expert",
		DefaultSubstrateRatio: 4,
		Description:           "Consistent success with advanced knowledge",
		Recommendations: []string{
			"Push substrate ratios to 1:4 or higher for maximum yields",
			"Create custom substrate blends for specific species",
			"Implement advanced techniques like grain-to-grain transfers",
			"Fine-tune all environmental parameters for optimal results",
		},
	},
}

// SubstrateTypes lists the supported substrate recipes
var SubstrateTypes = []SubstrateType{
	{
		ID:    "cvg",
		Label: "CVG Mix (Coco coir, Vermiculite, Gypsum)",
		Composition: []SubstrateIngredient{
			{Ingredient: "Coco Coir", Ratio: 0.5, Unit: "quarts"},
			{Ingredient: "Vermiculite", Ratio: 0.4, Unit: "quarts"},
			{Ingredient: "Gypsum", Ratio: 0.1, Unit: "quarts"},
		},
		Description: "A simple and effective substrate mix suitable for beginners",
		Benefits: []string{
			"Easy to prepare",
			"Resistant to contamination",
			"Good water retention",
			"Widely available ingredients",
		},
	},
	{
		ID:    "manure",
		Label: "Manure Mix",
		Composition: []SubstrateIngredient{
			{Ingredient: "Composted Manure", Ratio: 0.5, Unit: "quarts"},
			{Ingredient: "Coco Coir", Ratio: 0.3, Unit: "quarts"},
			{Ingredient: "Vermiculite", Ratio: 0.15, Unit: "quarts"},
			{Ingredient: "Gypsum", Ratio: 0.05, Unit: "quarts"},
		},
		Description: "Nutrient-rich substrate for higher yields",
		Benefits: []string{
			"Higher nutrient content",
			"Potentially larger yields",
			"Good for certain gourmet mushrooms",
			"Better for experienced growers",
		},
	},
	{
		ID:    "sawdust",
		Label: "Sawdust Mix",
		Composition: []SubstrateIngredient{
			{Ingredient: "Hardwood Sawdust", Ratio: 0.7, Unit: "quarts"},
			{Ingredient: "Wheat Bran", Ratio: 0.2, Unit: "quarts"},
			{Ingredient: "Gypsum", Ratio: 0.1, Unit: "quarts"},
		},
		Description: "Specialized substrate for wood-loving species",
		Benefits: []string{
			"Ideal for wood-loving species",
			"Good for oyster and lion's mane mushrooms",
			"Can be supplemented for higher yields",
			"Sustainable option using wood waste",
		},
	},
}

// ContainerSizes lists the selectable container options
var ContainerSizes = []ContainerSize{
	{Size: 1, Label: "1 quart", Description: "Small test batches or experiments"},
	{Size: 5, Label: "5 quarts", Description: "Standard shoebox size, good for beginners"},
	{Size: 12, Label: "12 quarts", Description: "Medium monotub, balanced yield and management"},
	{Size: 20, Label: "20 quarts", Description: "Large monotub, higher yields for experienced growers"},
	{Size: 54, Label: "54 quarts", Description: "Full-size monotub, maximum yields for experts"},
}

// CultivationTips are general best practices shown alongside results
var CultivationTips = []string{
	"Lower ratios (1:1, 1:2) provide faster colonization and less contamination risk.",
	"Higher ratios (1:4, 1:5) may provide better yields but increase contamination risk.",
	"Optimal temperature range is 65-80°F (18-27°C).",
	"Ensure proper field capacity (moisture content) in your substrate.",
	"Monitor pH levels (aim for 6.0–7.0).",
	"During colonization, CO2 levels can be high, but reduce during fruiting.",
	"Use a pressure cooker to properly sterilize grain spawn.",
	"Pasteurize bulk substrate to reduce competing organisms.",
	"Maintain cleanliness in your work area to prevent contamination.",
}

// ExperienceLevelByID returns the experience level for id, or nil
func ExperienceLevelByID(id string) *ExperienceLevel {
	for i := range ExperienceLevels {
		if ExperienceLevels[i].ID == id {
			return &ExperienceLevels[i]
		}
	}
	return nil
}

// SubstrateTypeByID returns the substrate type for id, or nil
func SubstrateTypeByID(id string) *SubstrateType {
	for i := range SubstrateTypes {
		if SubstrateTypes[i].ID == id {
			return &SubstrateTypes[i]
		}
	}
	return nil
}
