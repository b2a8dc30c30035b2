package meal

import (
	"fmt"

	"github.com/platelog/platelog-backend/internal/domain"
)

// ToggleProportionalScale flips proportional scaling for an ingredient and
// returns the new state. Turning scaling on seeds a density profile from the
// current macros when none exists and the weight is positive. Turning it off
// keeps the cached profile — re-enabling reuses the last snapshot.
func (s *Service) ToggleProportionalScale(sess *Session, input ToggleScalingInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	dish := sess.Record.FindDish(input.DishID)
	if dish == nil {
		return false, fmt.Errorf("dish %s: %w", input.DishID, domain.ErrNotFound)
	}

	ai, ok := dish.(*domain.AIDish)
	if !ok {
		return false, domain.NewValidationError("dish_id", "dish has no ingredients")
	}

	ing := ai.Ingredient(input.IngredientIndex)
	if ing == nil {
		return false, fmt.Errorf("dish %s ingredient %d: %w", input.DishID, input.IngredientIndex, domain.ErrNotFound)
	}

	ing.ProportionalScale = !ing.ProportionalScale
	if ing.ProportionalScale && ing.Density == nil && ing.WeightG > 0 {
		InitDensity(ing)
	}

	s.finishEdit(sess)
	return ing.ProportionalScale, nil
}
