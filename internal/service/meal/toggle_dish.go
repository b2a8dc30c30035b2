package meal

import (
	"fmt"

	"github.com/platelog/platelog-backend/internal/domain"
)

// ToggleDishEnabled enables or disables a dish and re-derives the totals.
// Disabling never deletes data — it only excludes the dish's contribution;
// this is the supported way to deactivate an AI dish.
func (s *Service) ToggleDishEnabled(sess *Session, input ToggleDishInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	dish := sess.Record.FindDish(input.DishID)
	if dish == nil {
		return fmt.Errorf("dish %s: %w", input.DishID, domain.ErrNotFound)
	}

	dish.SetEnabled(input.Enabled)

	s.finishEdit(sess)
	return nil
}
