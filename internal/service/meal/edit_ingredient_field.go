package meal

import (
	"fmt"

	"github.com/platelog/platelog-backend/internal/domain"
)

// EditIngredientField applies a single field edit to an AI-dish ingredient.
//
// A weight edit first rescales the macros through the density profile when
// proportional scaling is eligible, then stores the new weight. A macro edit
// is an explicit two-step: assign the parsed value, then refresh the edited
// field's density ratio if the ingredient has a positive weight. Either way
// the meal totals are re-derived before returning.
func (s *Service) EditIngredientField(sess *Session, input EditIngredientFieldInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	dish := sess.Record.FindDish(input.DishID)
	if dish == nil {
		return fmt.Errorf("dish %s: %w", input.DishID, domain.ErrNotFound)
	}

	ai, ok := dish.(*domain.AIDish)
	if !ok {
		return domain.NewValidationError("dish_id", "dish has no ingredients")
	}

	ing := ai.Ingredient(input.IngredientIndex)
	if ing == nil {
		return fmt.Errorf("dish %s ingredient %d: %w", input.DishID, input.IngredientIndex, domain.ErrNotFound)
	}

	value := parseNumeric(input.Value)

	if input.Field == domain.IngredientFieldWeightG {
		applyWeightEdit(ing, value)
	} else {
		applyMacroEdit(ing, input.Field, value)
		refreshDensityIfEligible(ing, input.Field, value)
	}

	s.finishEdit(sess)
	return nil
}

// applyWeightEdit rescales macros from the density cache when eligible, then
// stores the new weight. When scaling is off, missing, or the weight is not
// positive, the weight is simply assigned and the macros stay as they are.
func applyWeightEdit(ing *domain.Ingredient, newWeight float64) {
	ApplyDensity(ing, newWeight)
	ing.WeightG = newWeight
}

// applyMacroEdit assigns a parsed macro value to the addressed field.
func applyMacroEdit(ing *domain.Ingredient, field domain.IngredientField, value float64) {
	switch field {
	case domain.IngredientFieldProteinG:
		ing.Macros.ProteinG = value
	case domain.IngredientFieldFatG:
		ing.Macros.FatG = value
	case domain.IngredientFieldCarbsG:
		ing.Macros.CarbsG = value
	case domain.IngredientFieldFiberG:
		ing.Macros.FiberG = value
	case domain.IngredientFieldSodiumMg:
		ing.Macros.SodiumMg = value
	}
}

// refreshDensityIfEligible keeps the density cache in step with a macro edit.
// Only the edited field's ratio refreshes; stale sibling ratios are accepted
// source behavior.
func refreshDensityIfEligible(ing *domain.Ingredient, field domain.IngredientField, value float64) {
	if ing.WeightG > 0 {
		RefreshDensityField(ing, field, value)
	}
}
