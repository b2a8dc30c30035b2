package meal

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/domain"
)

// AddDish appends a new user dish with zeroed nutrients, enabled by default,
// and returns it. The per-meal dish limit from configuration applies.
func (s *Service) AddDish(sess *Session) (*domain.UserDish, error) {
	if len(sess.Record.Dishes) >= s.cfg.MaxDishesPerMeal {
		return nil, domain.NewValidationError("dishes", "meal dish limit reached")
	}

	dish := &domain.UserDish{
		ID:      uuid.New(),
		Enabled: true,
	}
	sess.Record.Dishes = append(sess.Record.Dishes, dish)

	s.log.Debug("added user dish",
		slog.String("record_id", sess.Record.ID.String()),
		slog.String("dish_id", dish.ID.String()),
	)

	s.finishEdit(sess)
	return dish, nil
}
