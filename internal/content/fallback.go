package content

import "spawnsmart/internal/domain"

// fallbackFacts is shown when the CMS has no mushroomFact entries
var fallbackFacts = []string{
	"Mushrooms are more closely related to humans than to plants, belonging to their own kingdom called Fungi.",
	"Some mushroom species can break down plastic, potentially helping with environmental cleanup.",
	"The largest living organism on Earth is a honey fungus in Oregon, spanning 2.4 miles (3.8 km) across.",
	"Mushrooms can produce vitamin D when exposed to sunlight, similar to human skin.",
	"Some mushroom species are bioluminescent and glow in the dark naturally.",
	"Fungi play a crucial role in ecosystems as decomposers, breaking down dead organic matter.",
	"Mushrooms communicate through an underground network sometimes called the 'Wood Wide Web'.",
	"There are over 14,000 described species of mushrooms, with scientists estimating many more undiscovered.",
	"Mushrooms have been used medicinally for thousands of years in many cultures.",
	"The study of fungi is called mycology, derived from the Greek word 'mykes' meaning mushroom.",
}

// defaultComponentContent is the UI copy used when the CMS yields no
// componentContent entries for a component
var defaultComponentContent = map[string]domain.ComponentContent{
	"header": {
		"title":       "SpawnSmart",
		"description": "The Ultimate Mushroom Cultivation Tool – Calculate spawn ratios, boost yields, and achieve pro-level results. Perfect for all skill levels!",
	},
	"calculator": {
		"title":           "SpawnSmart",
		"description":     "The Ultimate Mushroom Cultivation Tool – Calculate spawn ratios, boost yields, and achieve pro-level results. Perfect for all skill levels!",
		"experienceLevel": "Experience Level",
		"spawnAmount":     "Spawn Amount (quarts)",
		"substrateRatio":  "Substrate Ratio",
		"substrateType":   "Substrate Type",
		"containerSize":   "Container Size (quarts)",
		"save":            "Save",
		"reset":           "Reset",
		"saveSuccess":     "Settings saved successfully!",
		"saveFailure":     "Failed to save settings",
		"saveError":       "An error occurred while saving settings",
		"resetConfirm":    "Are you sure you want to reset to default values?",
	},
	"resultsPanel": {
		"title":                "Calculation Results",
		"spawnAmountLabel":     "Spawn Amount",
		"substrateVolumeLabel": "Substrate Volume",
		"ingredientsTitle":     "Substrate Ingredients",
		"noResultsText":        "Complete the form to see results",
		"containerAlertText":   "Warning: Your container size is smaller than the total volume. Consider using a larger container or reducing amounts.",
	},
	"aiAdvice": {
		"title":         "AI Cultivation Advisor",
		"loadingText":   "Generating personalized cultivation advice...",
		"errorText":     "Unable to generate advice. Please check your API key or try again later.",
		"refreshButton": "Get New Advice",
	},
	"mushroomFacts": {
		"title":         "Mushroom Fact",
		"loadingText":   "Loading interesting fact...",
		"errorText":     "Unable to load interesting fact. Please check your API key.",
		"refreshButton": "New Fact",
	},
	"recommendations": {
		"title":                 "Cultivation Recommendations",
		"loadingText":           "Loading recommendations...",
		"errorText":             "Unable to load recommendations. Please try again later.",
		"refreshButton":         "Refresh",
		"noRecommendationsText": "Complete the form to see personalized recommendations.",
	},
	"substrateSuppliers": {
		"title":            "Suppliers",
		"disclaimer":       "* Affiliate links support this calculator",
		"viewAllText":      "View All",
		"featuredOnlyText": "Featured Only",
	},
}

// FallbackFacts returns a copy of the hardcoded fact list
func FallbackFacts() []string {
	out := make([]string, len(fallbackFacts))
	copy(out, fallbackFacts)
	return out
}

// DefaultComponentContent returns the built-in UI copy for every
// component, keyed by component id
func DefaultComponentContent() map[string]domain.ComponentContent {
	out := make(map[string]domain.ComponentContent, len(defaultComponentContent))
	for id, fields := range defaultComponentContent {
		clone := make(domain.ComponentContent, len(fields))
		for k, v := range fields {
			clone[k] = v
		}
		out[id] = clone
	}
	return out
}
