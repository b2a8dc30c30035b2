package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/pkg/ctxutil"
)

// SaveSummary serializes the session's current state and persists it: the
// edited dish sequence and totals go to the meal record, the summary payload
// to the summary store, both within one transaction. On success the
// session's dirty flag is cleared.
func (s *Service) SaveSummary(ctx context.Context, sess *Session) (*domain.Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	record := sess.Record
	if record.UserID != userID {
		return nil, fmt.Errorf("meal record %s: %w", record.ID, domain.ErrNotFound)
	}

	summary := BuildSummary(record)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.records.UpdateDishes(ctx, userID, record.ID, record.Dishes, record.Totals); err != nil {
			return fmt.Errorf("update meal record: %w", err)
		}
		if err := s.summaries.Upsert(ctx, userID, record.ID, summary); err != nil {
			return fmt.Errorf("upsert summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	record.Dirty = false

	s.log.Info("meal summary saved",
		slog.String("record_id", record.ID.String()),
		slog.Int("dishes", len(summary.Dishes)),
	)

	return summary, nil
}
