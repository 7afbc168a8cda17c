// Package calculator computes spawn-to-substrate mix volumes and
// per-ingredient amounts. Pure arithmetic, no state.
package calculator

import (
	"strconv"

	"spawnsmart/internal/domain"
)

// Calculate derives mix volumes from the user's selections.
// substrateVolume = spawn x ratio, totalMix = spawn + substrate,
// containerFill = totalMix / container x 100. Values are formatted to
// one decimal place, matching the UI contract.
func Calculate(input domain.CalculatorInput) domain.CalculatorResult {
	substrateVolume := input.SpawnAmount * float64(input.SubstrateRatio)
	totalMixVolume := input.SpawnAmount + substrateVolume

	containerFill := 0.0
	if input.ContainerSize > 0 {
		containerFill = totalMixVolume / input.ContainerSize * 100
	}

	return domain.CalculatorResult{
		SpawnAmount:          input.SpawnAmount,
		SubstrateVolume:      format(substrateVolume),
		TotalMixVolume:       format(totalMixVolume),
		ContainerFill:        format(containerFill),
		OptimalMonotubVolume: format(totalMixVolume * 2),
		Ingredients:          Ingredients(input.SubstrateType, substrateVolume),
	}
}

// Ingredients returns the per-ingredient amounts for a substrate
// type's fixed ratio table. An unknown substrate type yields an empty
// list.
func Ingredients(substrateTypeID string, substrateVolume float64) []domain.IngredientAmount {
	substrate := domain.SubstrateTypeByID(substrateTypeID)
	if substrate == nil {
		return []domain.IngredientAmount{}
	}

	amounts := make([]domain.IngredientAmount, 0, len(substrate.Composition))
	for _, ingredient := range substrate.Composition {
		amounts = append(amounts, domain.IngredientAmount{
			Ingredient: ingredient.Ingredient,
			Amount:     format(substrateVolume * ingredient.Ratio),
			Unit:       ingredient.Unit,
		})
	}
	return amounts
}

// RecommendationsByExperience returns the static recommendation list
// for an experience level, defaulting to the beginner tier for
// unknown ids
func RecommendationsByExperience(levelID string) []string {
	level := domain.ExperienceLevelByID(levelID)
	if level == nil {
		level = &domain.ExperienceLevels[0]
	}
	return level.Recommendations
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
