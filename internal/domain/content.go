package domain

// SupplierType categorizes what a supplier sells
type SupplierType string

const (
	SupplierSubstrate   SupplierType = "substrate"
	SupplierSpores      SupplierType = "spores"
	SupplierGrain       SupplierType = "grain"
	SupplierAccessories SupplierType = "accessories"
)

// SporeType categorizes spore varieties
type SporeType string

const (
	SporeCubensis   SporeType = "cubensis"
	SporeCyanescens SporeType = "cyanescens"
	SporeGourmet    SporeType = "gourmet"
	SporeMedicinal  SporeType = "medicinal"
	SporeOther      SporeType = "other"
)

// Difficulty is the cultivation difficulty of a spore variety
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Supplier represents a cultivation supply vendor
type Supplier struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	URL          string       `json:"url"`
	Featured     bool         `json:"featured"`
	ReferralCode string       `json:"referral_code,omitempty"`
	Type         SupplierType `json:"type"`
	Products     []Product    `json:"products"`
}

// Product represents a product offered by a supplier
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price,omitempty"`
	URL         string `json:"url,omitempty"`
	SupplierID  string `json:"supplier_id,omitempty"`
}

// SporeVariety represents a spore variety and its cultivation profile
type SporeVariety struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	ScientificName    string     `json:"scientific_name,omitempty"`
	Type              SporeType  `json:"type"`
	Difficulty        Difficulty `json:"difficulty"`
	ColonizationTime  string     `json:"colonization_time"`
	Description       string     `json:"description"`
	Appearance        string     `json:"appearance,omitempty"`
	GrowingConditions string     `json:"growing_conditions,omitempty"`
	Strength          string     `json:"strength,omitempty"`
	MoodEffects       string     `json:"mood_effects,omitempty"`
	MedicinalBenefits string     `json:"medicinal_benefits,omitempty"`
	CulinaryUses      string     `json:"culinary_uses,omitempty"`
	Price             string     `json:"price"`
	URL               string     `json:"url"`
	ImageURL          string     `json:"image_url"`
	Suppliers         []string   `json:"suppliers"`
}

// EducationalItem represents an educational article or guide
type EducationalItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
}

// FAQ represents a frequently asked question with its display order
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// ComponentContent is UI copy for a single component: field name to text
type ComponentContent map[string]string
