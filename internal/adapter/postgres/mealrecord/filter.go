package mealrecord

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/domain"
)

// Filter defines parameters for searching and paginating meal records.
type Filter struct {
	// Search performs ILIKE '%...%' on meal_name.
	// nil or empty string means no text filter.
	Search *string

	// DietTime filters records by meal of the day.
	DietTime *domain.DietTime

	// OccurredFrom / OccurredTo bound occurred_at (inclusive).
	OccurredFrom *time.Time
	OccurredTo   *time.Time

	// SortBy determines the sort column: "occurred_at", "created_at", "meal_name".
	// Default: "occurred_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of records to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of records to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByOccurredAt = "occurred_at"
	sortByCreatedAt  = "created_at"
	sortByMealName   = "meal_name"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByOccurredAt, sortByCreatedAt, sortByMealName:
		// valid
	default:
		f.SortBy = sortByOccurredAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// buildListQuery builds the filtered SELECT for List.
func buildListQuery(userID uuid.UUID, f Filter) sq.SelectBuilder {
	qb := sq.Select(
		"id", "user_id", "meal_name", "diet_time", "occurred_at",
		"captured_labels", "extra_image_summary", "dishes", "created_at", "updated_at",
	).
		From("meal_records").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if f.Search != nil && *f.Search != "" {
		qb = qb.Where(sq.ILike{"meal_name": "%" + *f.Search + "%"})
	}
	if f.DietTime != nil {
		qb = qb.Where(sq.Eq{"diet_time": f.DietTime.String()})
	}
	if f.OccurredFrom != nil {
		qb = qb.Where(sq.GtOrEq{"occurred_at": *f.OccurredFrom})
	}
	if f.OccurredTo != nil {
		qb = qb.Where(sq.LtOrEq{"occurred_at": *f.OccurredTo})
	}

	return qb.
		OrderBy(f.SortBy + " " + f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
}

// buildCountQuery builds the matching COUNT for List.
func buildCountQuery(userID uuid.UUID, f Filter) sq.SelectBuilder {
	qb := sq.Select("count(*)").
		From("meal_records").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if f.Search != nil && *f.Search != "" {
		qb = qb.Where(sq.ILike{"meal_name": "%" + *f.Search + "%"})
	}
	if f.DietTime != nil {
		qb = qb.Where(sq.Eq{"diet_time": f.DietTime.String()})
	}
	if f.OccurredFrom != nil {
		qb = qb.Where(sq.GtOrEq{"occurred_at": *f.OccurredFrom})
	}
	if f.OccurredTo != nil {
		qb = qb.Where(sq.LtOrEq{"occurred_at": *f.OccurredTo})
	}

	return qb
}
