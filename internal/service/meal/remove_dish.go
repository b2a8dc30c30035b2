package meal

import (
	"fmt"

	"github.com/platelog/platelog-backend/internal/domain"
)

// RemoveDish deletes a user dish from the record. AI dishes are protected:
// removal is rejected with domain.ErrProtectedDish and the dish sequence is
// left unchanged — callers should offer disabling instead.
func (s *Service) RemoveDish(sess *Session, input RemoveDishInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	idx := -1
	for i, d := range sess.Record.Dishes {
		if d.DishID() == input.DishID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("dish %s: %w", input.DishID, domain.ErrNotFound)
	}

	if _, ok := sess.Record.Dishes[idx].(*domain.UserDish); !ok {
		return fmt.Errorf("dish %s: %w", input.DishID, domain.ErrProtectedDish)
	}

	sess.Record.Dishes = append(sess.Record.Dishes[:idx], sess.Record.Dishes[idx+1:]...)

	s.finishEdit(sess)
	return nil
}
