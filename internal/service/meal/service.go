// Package meal implements the meal editing engine: aggregation of
// ingredient-level nutrition into dish and meal totals, proportional
// rescaling via per-ingredient density profiles, field-edit mutation of meal
// records, and serialization of the edited state into a persistence-ready
// summary.
package meal

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/config"
	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/internal/service/meal/nutrition"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type mealRecordRepo interface {
	GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.MealRecord, error)
	Create(ctx context.Context, record *domain.MealRecord) (*domain.MealRecord, error)
	UpdateDishes(ctx context.Context, userID, recordID uuid.UUID, dishes []domain.Dish, totals domain.MealTotals) error
}

type summaryRepo interface {
	Upsert(ctx context.Context, userID, recordID uuid.UUID, summary *domain.Summary) error
	GetByMealID(ctx context.Context, userID, recordID uuid.UUID) (*domain.Summary, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the meal editing business logic. Edit operations work
// on an in-memory Session and never perform I/O; GetSession, SaveSummary and
// CreateFromRecognition bridge sessions to the persistence collaborator.
type Service struct {
	records   mealRecordRepo
	summaries summaryRepo
	tx        txManager
	log       *slog.Logger
	cfg       config.MealConfig
}

// NewService creates a new Meal service.
func NewService(
	log *slog.Logger,
	records mealRecordRepo,
	summaries summaryRepo,
	tx txManager,
	cfg config.MealConfig,
) *Service {
	return &Service{
		records:   records,
		summaries: summaries,
		tx:        tx,
		log:       log.With("service", "meal"),
		cfg:       cfg,
	}
}

// DishEnergyDisplay returns a dish's energy in the configured display unit,
// derived from its aggregated totals (kcal → nearest integer, kJ → one
// decimal place).
func (s *Service) DishEnergyDisplay(d domain.Dish) float64 {
	totals := DishTotals(d)
	unit := nutrition.Unit(s.cfg.DefaultEnergyUnit)
	if unit == nutrition.UnitKJ {
		return nutrition.Round1(totals.EnergyKJ)
	}
	return math.Round(nutrition.KJToKcal(totals.EnergyKJ))
}

// finishEdit closes out a mutation: totals are re-derived from the enabled
// dishes and the record is flagged as having unsaved edits. No partial
// aggregate is ever observable because every mutation path ends here.
func (s *Service) finishEdit(sess *Session) {
	Recompute(sess.Record)
	sess.Record.Dirty = true
}

// parseNumeric coerces raw field input to a non-negative float64.
// Non-numeric, non-finite, and negative input collapses to 0 rather than
// erroring; invalid hand-typed values are never an error path.
func parseNumeric(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
