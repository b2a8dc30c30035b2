package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/pkg/ctxutil"
)

// GetSession loads a meal record and opens an editing session over it.
// Totals are recomputed on load so the session never starts from stored,
// possibly stale aggregates.
func (s *Service) GetSession(ctx context.Context, recordID uuid.UUID) (*Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if recordID == uuid.Nil {
		return nil, domain.NewValidationError("record_id", "required")
	}

	record, err := s.records.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, fmt.Errorf("get meal record: %w", err)
	}

	return NewSession(record), nil
}
