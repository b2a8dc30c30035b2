package summary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/adapter/postgres/mealrecord"
	"github.com/platelog/platelog-backend/internal/adapter/postgres/summary"
	"github.com/platelog/platelog-backend/internal/adapter/postgres/testhelper"
	"github.com/platelog/platelog-backend/internal/domain"
)

func setup(t *testing.T) (*summary.Repo, *mealrecord.Repo) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return summary.New(pool), mealrecord.New(pool)
}

// createRecord inserts a parent meal record so summary FK constraints hold.
func createRecord(t *testing.T, repo *mealrecord.Repo, userID uuid.UUID) uuid.UUID {
	t.Helper()
	record := &domain.MealRecord{
		ID:         uuid.New(),
		UserID:     userID,
		MealName:   "summary test meal",
		DietTime:   domain.DietTimeDinner,
		OccurredAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if _, err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("create parent record: %v", err)
	}
	return record.ID
}

func newTestSummary() *domain.Summary {
	energy := 500.5
	return &domain.Summary{
		MealSummary: domain.MealSummary{
			MealName:      "summary test meal",
			DietTime:      "dinner",
			TotalEnergyKJ: 500.5,
			TotalProteinG: 30,
			TotalFatG:     10,
			TotalCarbsG:   20,
			TotalFiberG:   3,
			TotalSodiumMg: 200,
		},
		Dishes: []domain.SummaryDish{
			{
				StandardName: "Salmon Bowl",
				Ingredients: []domain.SummaryIngredient{
					{
						Name:         "salmon",
						WeightG:      150,
						WeightMethod: "ai_estimate",
						DataSource:   "database",
						EnergyKJ:     &energy,
						Macros: domain.NutrientVector{
							ProteinG: 30, FatG: 10, CarbsG: 20, FiberG: 3, SodiumMg: 200,
						},
					},
				},
			},
		},
		CapturedLabels:    []string{"salmon"},
		ExtraImageSummary: "bowl with salmon",
		OccurredAt:        time.Now().UTC().Truncate(time.Second),
	}
}

func TestRepo_Upsert_GetByMealID_Roundtrip(t *testing.T) {
	t.Parallel()
	summaries, records := setup(t)
	ctx := context.Background()

	userID := uuid.New()
	recordID := createRecord(t, records, userID)

	s := newTestSummary()
	if err := summaries.Upsert(ctx, userID, recordID, s); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := summaries.GetByMealID(ctx, userID, recordID)
	if err != nil {
		t.Fatalf("GetByMealID: %v", err)
	}

	if got.MealSummary.TotalEnergyKJ != 500.5 {
		t.Errorf("TotalEnergyKJ = %v, want 500.5", got.MealSummary.TotalEnergyKJ)
	}
	if len(got.Dishes) != 1 || len(got.Dishes[0].Ingredients) != 1 {
		t.Fatalf("Dishes = %+v, want one dish with one ingredient", got.Dishes)
	}
	ing := got.Dishes[0].Ingredients[0]
	if ing.EnergyKJ == nil || *ing.EnergyKJ != 500.5 {
		t.Errorf("Ingredient.EnergyKJ = %v, want 500.5", ing.EnergyKJ)
	}
	if ing.WeightMethod != "ai_estimate" || ing.DataSource != "database" {
		t.Errorf("provenance = %q/%q, want ai_estimate/database", ing.WeightMethod, ing.DataSource)
	}
}

func TestRepo_Upsert_ReplacesExisting(t *testing.T) {
	t.Parallel()
	summaries, records := setup(t)
	ctx := context.Background()

	userID := uuid.New()
	recordID := createRecord(t, records, userID)

	first := newTestSummary()
	if err := summaries.Upsert(ctx, userID, recordID, first); err != nil {
		t.Fatalf("Upsert first: %v", err)
	}

	second := newTestSummary()
	second.MealSummary.TotalProteinG = 99
	if err := summaries.Upsert(ctx, userID, recordID, second); err != nil {
		t.Fatalf("Upsert second: %v", err)
	}

	got, err := summaries.GetByMealID(ctx, userID, recordID)
	if err != nil {
		t.Fatalf("GetByMealID: %v", err)
	}
	if got.MealSummary.TotalProteinG != 99 {
		t.Errorf("TotalProteinG = %v, want 99 after upsert", got.MealSummary.TotalProteinG)
	}
}

func TestRepo_Upsert_UnknownRecord(t *testing.T) {
	t.Parallel()
	summaries, _ := setup(t)
	ctx := context.Background()

	err := summaries.Upsert(ctx, uuid.New(), uuid.New(), newTestSummary())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Upsert without parent record: err = %v, want domain.ErrNotFound", err)
	}
}

func TestRepo_GetByMealID_NotFound(t *testing.T) {
	t.Parallel()
	summaries, _ := setup(t)
	ctx := context.Background()

	_, err := summaries.GetByMealID(ctx, uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByMealID unknown: err = %v, want domain.ErrNotFound", err)
	}
}

func TestRepo_GetByMealID_WrongUser(t *testing.T) {
	t.Parallel()
	summaries, records := setup(t)
	ctx := context.Background()

	owner := uuid.New()
	recordID := createRecord(t, records, owner)
	if err := summaries.Upsert(ctx, owner, recordID, newTestSummary()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	_, err := summaries.GetByMealID(ctx, uuid.New(), recordID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByMealID other user: err = %v, want domain.ErrNotFound", err)
	}
}
