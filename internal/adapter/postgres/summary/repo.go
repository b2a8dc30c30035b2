// Package summary implements the PostgreSQL repository for persisted meal
// summaries. The summary payload is stored as a single JSONB document keyed
// by the meal record it was built from.
package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/adapter/postgres"
	"github.com/platelog/platelog-backend/internal/domain"
)

const entity = "meal_summary"

// Repo provides access to meal summaries.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new summary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertQuery = `
INSERT INTO meal_summaries (meal_record_id, user_id, payload)
VALUES ($1, $2, $3)
ON CONFLICT (meal_record_id)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`

// Upsert writes the summary for a meal record, replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, userID, recordID uuid.UUID, summary *domain.Summary) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	if _, err := q.Exec(ctx, upsertQuery, recordID, userID, payload); err != nil {
		return postgres.MapError(err, entity, recordID)
	}

	return nil
}

const getByMealIDQuery = `
SELECT payload
FROM meal_summaries
WHERE meal_record_id = $1 AND user_id = $2`

// GetByMealID returns the persisted summary for a meal record.
func (r *Repo) GetByMealID(ctx context.Context, userID, recordID uuid.UUID) (*domain.Summary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var payload []byte
	if err := q.QueryRow(ctx, getByMealIDQuery, recordID, userID).Scan(&payload); err != nil {
		return nil, postgres.MapError(err, entity, recordID)
	}

	var s domain.Summary
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("%s %s: unmarshal payload: %w", entity, recordID, err)
	}

	return &s, nil
}
