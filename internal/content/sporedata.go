package content

import (
	"fmt"
	"net/url"
	"strings"

	"spawnsmart/internal/domain"
)

// SporeRecord mirrors the shape of the bundled spore dataset used as
// the secondary fallback when the CMS has no spore entries, and as the
// raw records the seed tool uploads
type SporeRecord struct {
	MushroomType      string
	Subtype           string
	SporeName         string
	Price             string
	URL               string
	Store             string
	GrowingConditions string
	Appearance        string
	Strength          string
	MoodEffects       string
	CulinaryUses      string
	MedicinalBenefits string
	Description       string
}

var sporeSeedData = []SporeRecord{
	{
		MushroomType:      "Psilocybe cubensis",
		Subtype:           "Golden Teacher",
		SporeName:         "Golden Teacher Spores",
		Price:             "$19.99",
		URL:               "https://pnwspore.com/product/golden-teacher-spores/",
		Store:             "PNW Spore Co.",
		GrowingConditions: "Beginner-friendly; grows well indoors in warm, humid environments using standard substrates like brown rice flour or manure.",
		Appearance:        "Medium-sized with golden-yellow caps, up to 8 cm wide, and slender pale stems.",
		Strength:          "Moderate to Strong",
		MoodEffects:       "Euphoric, uplifting, introspective.",
	},
	{
		MushroomType:      "Psilocybe cubensis",
		Subtype:           "B+",
		SporeName:         "B+ Mushroom Spores",
		Price:             "$19.99",
		URL:               "https://pnwspore.com/product/b-mushroom-spores/",
		Store:             "PNW Spore Co.",
		GrowingConditions: "Beginner-friendly; resilient strain that adapts well to various conditions.",
		Appearance:        "Large caps with caramel coloration and thick stems.",
		Strength:          "Moderate",
		MoodEffects:       "Euphoric, visual, introspective.",
	},
	{
		MushroomType:      "Psilocybe cubensis",
		Subtype:           "Penis Envy",
		SporeName:         "Penis Envy Spores",
		Price:             "$24.99",
		URL:               "https://pnwspore.com/product/penis-envy-spores/",
		Store:             "PNW Spore Co.",
		GrowingConditions: "Advanced; requires careful attention to humidity and substrate quality.",
		Appearance:        "Distinctive phallic shape with thick stems and small caps.",
		Strength:          "Very Strong",
		MoodEffects:       "Intense visuals, profound introspection.",
	},
	{
		MushroomType:      "Psilocybe cyanescens",
		Subtype:           "Wavy Caps",
		SporeName:         "Psilocybe Cyanescens Spores",
		Price:             "$29.99",
		URL:               "https://pnwspore.com/product/psilocybe-cyanescens-spores/",
		Store:             "PNW Spore Co.",
		GrowingConditions: "Advanced; prefers woody substrates and cooler temperatures.",
		Appearance:        "Distinctive wavy caps with caramel to chestnut coloration.",
		Strength:          "Very Strong",
		MoodEffects:       "Intense visuals, euphoria, deep introspection.",
	},
	{
		MushroomType:      "Gourmet",
		Subtype:           "Blue Oyster",
		SporeName:         "Blue Oyster Mushroom Culture",
		Price:             "$15.99",
		URL:               "https://northspore.com/collections/cultures/products/blue-oyster-pleurotus-ostreatus-var-columbinus-culture",
		Store:             "North Spore",
		GrowingConditions: "Beginner-friendly; grows well on straw, coffee grounds, and hardwood.",
		Appearance:        "Beautiful blue-gray clusters with shelf-like growth pattern.",
		CulinaryUses:      "Excellent for stir-fries, soups, and meat substitutes.",
	},
	{
		MushroomType:      "Medicinal",
		Subtype:           "Lion's Mane",
		SporeName:         "Lion's Mane Culture",
		Price:             "$18.99",
		URL:               "https://northspore.com/collections/cultures/products/lions-mane-hericium-erinaceus-culture",
		Store:             "North Spore",
		GrowingConditions: "Intermediate; prefers hardwood substrates with high humidity.",
		Appearance:        "Distinctive white, tooth-like or pom-pom appearance.",
		MedicinalBenefits: "Supports cognitive function, nerve health, and immune system.",
	},
}

// SporeSeed returns a copy of the bundled raw spore records
func SporeSeed() []SporeRecord {
	out := make([]SporeRecord, len(sporeSeedData))
	copy(out, sporeSeedData)
	return out
}

var beginnerVarieties = map[string]bool{
	"golden teacher": true, "b+": true, "cambodian": true, "z-strain": true, "ecuador": true,
}

var advancedVarieties = map[string]bool{
	"penis envy": true, "albino penis envy": true, "enigma": true, "tidal wave": true,
}

// staticSporeData builds the local spore dataset: field derivation and
// duplicate consolidation matching the bundled dataset's processing
func staticSporeData() []domain.SporeVariety {
	spores := make([]domain.SporeVariety, 0, len(sporeSeedData))
	for i, raw := range sporeSeedData {
		difficulty := deriveDifficulty(raw)
		spores = append(spores, domain.SporeVariety{
			ID:                i + 1,
			Name:              orDefault(raw.Subtype, "Unknown Variety"),
			ScientificName:    raw.MushroomType,
			Type:              deriveSporeType(raw),
			Difficulty:        difficulty,
			ColonizationTime:  colonizationForDifficulty(difficulty),
			Description:       deriveDescription(raw, difficulty),
			Appearance:        raw.Appearance,
			GrowingConditions: raw.GrowingConditions,
			Strength:          raw.Strength,
			MoodEffects:       raw.MoodEffects,
			MedicinalBenefits: raw.MedicinalBenefits,
			CulinaryUses:      raw.CulinaryUses,
			Price:             orDefault(raw.Price, "Price not available"),
			URL:               orDefault(raw.URL, "#"),
			ImageURL:          placeholderImage(raw.Subtype),
			Suppliers:         []string{orDefault(raw.Store, "Unknown")},
		})
	}
	return consolidateSpores(spores)
}

func deriveDifficulty(raw SporeRecord) domain.Difficulty {
	conditions := strings.ToLower(raw.GrowingConditions)
	switch {
	case conditions != "" && strings.Contains(conditions, "beginner"):
		return domain.DifficultyBeginner
	case conditions != "" && (strings.Contains(conditions, "advanced") || strings.Contains(conditions, "challenging")):
		return domain.DifficultyAdvanced
	case conditions != "":
		return domain.DifficultyIntermediate
	}

	subtype := strings.ToLower(raw.Subtype)
	switch {
	case beginnerVarieties[subtype]:
		return domain.DifficultyBeginner
	case advancedVarieties[subtype]:
		return domain.DifficultyAdvanced
	default:
		return domain.DifficultyIntermediate
	}
}

func deriveSporeType(raw SporeRecord) domain.SporeType {
	mushroomType := strings.ToLower(raw.MushroomType)
	subtype := strings.ToLower(raw.Subtype)
	switch {
	case strings.Contains(mushroomType, "cyanescens"):
		return domain.SporeCyanescens
	case strings.Contains(mushroomType, "gourmet"):
		return domain.SporeGourmet
	case strings.Contains(mushroomType, "medicinal"):
		return domain.SporeMedicinal
	case containsAny(subtype, "oyster", "shiitake"):
		return domain.SporeGourmet
	case containsAny(subtype, "reishi", "lion's mane", "cordyceps"):
		return domain.SporeMedicinal
	default:
		return domain.SporeCubensis
	}
}

func deriveDescription(raw SporeRecord, difficulty domain.Difficulty) string {
	if raw.Description != "" {
		return raw.Description
	}
	name := orDefault(raw.Subtype, "This mushroom")
	desc := fmt.Sprintf("%s is a %s level %s variety.", name, difficulty, deriveSporeType(raw))
	if raw.GrowingConditions != "" {
		desc += " " + raw.GrowingConditions
	}
	if raw.Store != "" {
		desc += fmt.Sprintf(" Available from %s.", raw.Store)
	}
	return desc
}

func colonizationForDifficulty(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyBeginner:
		return "10-14 days"
	case domain.DifficultyAdvanced:
		return "21-30 days"
	default:
		return "14-21 days"
	}
}

// consolidateSpores merges duplicate name+type pairs, keeping the
// first occurrence and unioning supplier lists
func consolidateSpores(spores []domain.SporeVariety) []domain.SporeVariety {
	seen := make(map[string]int)
	out := make([]domain.SporeVariety, 0, len(spores))
	for _, spore := range spores {
		key := fmt.Sprintf("%s-%s", spore.Name, spore.Type)
		idx, ok := seen[key]
		if !ok {
			seen[key] = len(out)
			out = append(out, spore)
			continue
		}
		for _, supplier := range spore.Suppliers {
			if !containsString(out[idx].Suppliers, supplier) {
				out[idx].Suppliers = append(out[idx].Suppliers, supplier)
			}
		}
	}
	return out
}

func placeholderImage(subtype string) string {
	return "https://via.placeholder.com/150?text=" + url.QueryEscape(orDefault(subtype, "Mushroom"))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
