package meal

import (
	"fmt"
	"log/slog"

	"github.com/platelog/platelog-backend/internal/domain"
)

// EditDishField applies a single dish-level field edit to a user dish.
//
// AI-dish scalar fields are immutable through this engine — the edit is
// rejected with domain.ErrImmutableField and no state changes. For user
// dishes, name passes through as text and every other field is parsed as a
// non-negative number with a 0 fallback.
func (s *Service) EditDishField(sess *Session, input EditDishFieldInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	dish := sess.Record.FindDish(input.DishID)
	if dish == nil {
		return fmt.Errorf("dish %s: %w", input.DishID, domain.ErrNotFound)
	}

	switch d := dish.(type) {
	case *domain.AIDish:
		s.log.Debug("rejected dish-level edit on AI dish",
			slog.String("dish_id", input.DishID.String()),
			slog.String("field", input.Field.String()),
		)
		return fmt.Errorf("dish %s field %s: %w", input.DishID, input.Field, domain.ErrImmutableField)

	case *domain.UserDish:
		if input.Field == domain.DishFieldName {
			d.Name = input.Value
			break
		}

		value := parseNumeric(input.Value)
		switch input.Field {
		case domain.DishFieldWeight:
			d.WeightG = value
		case domain.DishFieldProtein:
			d.ProteinG = value
		case domain.DishFieldFat:
			d.FatG = value
		case domain.DishFieldCarb:
			d.CarbG = value
		case domain.DishFieldFiber:
			d.FiberG = value
		case domain.DishFieldSodiumMg:
			d.SodiumMg = value
		}
	}

	s.finishEdit(sess)
	return nil
}
