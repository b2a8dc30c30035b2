package meal

import (
	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/internal/service/meal/nutrition"
)

// InitDensity snapshots the ingredient's nutrient-per-gram ratios from its
// current macros and weight. Requires a positive weight; otherwise the
// profile is left unset.
func InitDensity(ing *domain.Ingredient) {
	if ing.WeightG <= 0 {
		return
	}
	ing.Density = &domain.DensityProfile{
		ProteinPerG: ing.Macros.ProteinG / ing.WeightG,
		FatPerG:     ing.Macros.FatG / ing.WeightG,
		CarbsPerG:   ing.Macros.CarbsG / ing.WeightG,
		FiberPerG:   ing.Macros.FiberG / ing.WeightG,
		SodiumPerG:  ing.Macros.SodiumMg / ing.WeightG,
	}
}

// RefreshDensityField updates the single ratio corresponding to an edited
// macro field, using the ingredient's current weight. The sibling ratios are
// deliberately left untouched, so a later weight edit scales unedited macros
// with whatever ratios were last captured. No-op when the weight is not
// positive or no profile exists yet.
func RefreshDensityField(ing *domain.Ingredient, field domain.IngredientField, newValue float64) {
	if ing.WeightG <= 0 || ing.Density == nil {
		return
	}

	ratio := newValue / ing.WeightG
	switch field {
	case domain.IngredientFieldProteinG:
		ing.Density.ProteinPerG = ratio
	case domain.IngredientFieldFatG:
		ing.Density.FatPerG = ratio
	case domain.IngredientFieldCarbsG:
		ing.Density.CarbsPerG = ratio
	case domain.IngredientFieldFiberG:
		ing.Density.FiberPerG = ratio
	case domain.IngredientFieldSodiumMg:
		ing.Density.SodiumPerG = ratio
	}
}

// ApplyDensity rescales the ingredient's macros to a new weight using the
// cached density profile, rounding each macro to two decimal places. It only
// fires when proportional scaling is enabled, a profile exists, and the new
// weight is positive; otherwise it is a no-op and the caller stores the
// weight without side effects.
//
// ApplyDensity does not assign the weight itself — the caller does, so the
// scaling step stays independently testable.
func ApplyDensity(ing *domain.Ingredient, newWeight float64) {
	if !ing.ProportionalScale || ing.Density == nil || newWeight <= 0 {
		return
	}

	ing.Macros.ProteinG = nutrition.Round2(ing.Density.ProteinPerG * newWeight)
	ing.Macros.FatG = nutrition.Round2(ing.Density.FatPerG * newWeight)
	ing.Macros.CarbsG = nutrition.Round2(ing.Density.CarbsPerG * newWeight)
	ing.Macros.FiberG = nutrition.Round2(ing.Density.FiberPerG * newWeight)
	ing.Macros.SodiumMg = nutrition.Round2(ing.Density.SodiumPerG * newWeight)
}
