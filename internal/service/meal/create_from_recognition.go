package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/pkg/ctxutil"
)

// CreateFromRecognition maps an upstream recognition payload into a meal
// record, persists it, and opens an editing session over the stored record.
func (s *Service) CreateFromRecognition(ctx context.Context, payload RecognitionMeal) (*Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	record, err := s.mapRecognitionMeal(userID, payload)
	if err != nil {
		return nil, err
	}

	Recompute(record)

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("create meal record: %w", err)
	}

	s.log.Info("meal record created from recognition",
		slog.String("record_id", created.ID.String()),
		slog.Int("dishes", len(created.Dishes)),
	)

	return NewSession(created), nil
}
