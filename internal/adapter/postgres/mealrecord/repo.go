// Package mealrecord implements the PostgreSQL repository for meal records.
package mealrecord

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platelog/platelog-backend/internal/adapter/postgres"
	"github.com/platelog/platelog-backend/internal/domain"
)

const entity = "meal_record"

// Repo provides access to meal records.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meal record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createQuery = `
INSERT INTO meal_records (id, user_id, meal_name, diet_time, occurred_at, captured_labels, extra_image_summary, dishes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at, updated_at`

// Create inserts a new meal record and returns it with timestamps filled in.
func (r *Repo) Create(ctx context.Context, record *domain.MealRecord) (*domain.MealRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	dishes, err := encodeDishes(record.Dishes)
	if err != nil {
		return nil, fmt.Errorf("create meal record: %w", err)
	}

	labels := record.CapturedLabels
	if labels == nil {
		labels = []string{}
	}

	err = q.QueryRow(ctx, createQuery,
		record.ID,
		record.UserID,
		record.MealName,
		record.DietTime.String(),
		record.OccurredAt,
		labels,
		record.ExtraImageSummary,
		dishes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, record.ID)
	}

	return record, nil
}

const getByIDQuery = `
SELECT id, user_id, meal_name, diet_time, occurred_at, captured_labels, extra_image_summary, dishes, created_at, updated_at
FROM meal_records
WHERE id = $1 AND user_id = $2`

// GetByID returns a single meal record owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.MealRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		record    domain.MealRecord
		dietTime  string
		dishesRaw []byte
	)

	err := q.QueryRow(ctx, getByIDQuery, recordID, userID).Scan(
		&record.ID,
		&record.UserID,
		&record.MealName,
		&dietTime,
		&record.OccurredAt,
		&record.CapturedLabels,
		&record.ExtraImageSummary,
		&dishesRaw,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, recordID)
	}

	record.DietTime = domain.DietTime(dietTime)
	record.Dishes, err = decodeDishes(dishesRaw)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, recordID, err)
	}

	return &record, nil
}

const updateDishesQuery = `
UPDATE meal_records
SET dishes = $3, totals = $4, updated_at = now()
WHERE id = $1 AND user_id = $2`

// UpdateDishes replaces the dish document and stored totals of a record.
func (r *Repo) UpdateDishes(ctx context.Context, userID, recordID uuid.UUID, dishes []domain.Dish, totals domain.MealTotals) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	doc, err := encodeDishes(dishes)
	if err != nil {
		return fmt.Errorf("update meal record: %w", err)
	}

	totalsDoc, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("update meal record: marshal totals: %w", err)
	}

	tag, err := q.Exec(ctx, updateDishesQuery, recordID, userID, doc, totalsDoc)
	if err != nil {
		return postgres.MapError(err, entity, recordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, recordID, domain.ErrNotFound)
	}

	return nil
}

const deleteQuery = `
DELETE FROM meal_records
WHERE id = $1 AND user_id = $2`

// Delete removes a meal record. The associated summary is removed by the
// ON DELETE CASCADE constraint.
func (r *Repo) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteQuery, recordID, userID)
	if err != nil {
		return postgres.MapError(err, entity, recordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, recordID, domain.ErrNotFound)
	}

	return nil
}

// List returns the user's meal records matching the filter, plus the total
// number of matches disregarding pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter Filter) ([]*domain.MealRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	filter.normalize()

	countSQL, countArgs, err := buildCountQuery(userID, filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, entity, userID)
	}
	if total == 0 {
		return []*domain.MealRecord{}, 0, nil
	}

	listSQL, listArgs, err := buildListQuery(userID, filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, entity, userID)
	}
	defer rows.Close()

	records := make([]*domain.MealRecord, 0, filter.Limit)
	for rows.Next() {
		var (
			record    domain.MealRecord
			dietTime  string
			dishesRaw []byte
		)
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.MealName,
			&dietTime,
			&record.OccurredAt,
			&record.CapturedLabels,
			&record.ExtraImageSummary,
			&dishesRaw,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan meal record: %w", err)
		}
		record.DietTime = domain.DietTime(dietTime)
		record.Dishes, err = decodeDishes(dishesRaw)
		if err != nil {
			return nil, 0, fmt.Errorf("%s %s: %w", entity, record.ID, err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate meal records: %w", err)
	}

	return records, total, nil
}

const listPageQuery = `
SELECT id, user_id, meal_name, diet_time, occurred_at, captured_labels, extra_image_summary, dishes, created_at, updated_at
FROM meal_records
WHERE id > $1
ORDER BY id
LIMIT $2`

// ListPage returns up to limit records across all users with id greater than
// afterID, ordered by id. Used for keyset-paginated full scans.
func (r *Repo) ListPage(ctx context.Context, afterID uuid.UUID, limit int) ([]*domain.MealRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPageQuery, afterID, limit)
	if err != nil {
		return nil, postgres.MapError(err, entity, afterID)
	}
	defer rows.Close()

	records := make([]*domain.MealRecord, 0, limit)
	for rows.Next() {
		var (
			record    domain.MealRecord
			dietTime  string
			dishesRaw []byte
		)
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.MealName,
			&dietTime,
			&record.OccurredAt,
			&record.CapturedLabels,
			&record.ExtraImageSummary,
			&dishesRaw,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan meal record: %w", err)
		}
		record.DietTime = domain.DietTime(dietTime)
		record.Dishes, err = decodeDishes(dishesRaw)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", entity, record.ID, err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal records: %w", err)
	}

	return records, nil
}
