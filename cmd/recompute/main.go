// Command recompute re-derives the stored totals of every meal record and
// rebuilds persisted summaries from the current dish documents. Run it after
// a change to the aggregation rules so stored values match what the engine
// would produce today. Records without a persisted summary keep none.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/adapter/postgres"
	"github.com/platelog/platelog-backend/internal/adapter/postgres/mealrecord"
	summaryrepo "github.com/platelog/platelog-backend/internal/adapter/postgres/summary"
	"github.com/platelog/platelog-backend/internal/app"
	"github.com/platelog/platelog-backend/internal/config"
	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/internal/service/meal"
)

const pageSize = 200

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting recompute", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	records := mealrecord.New(pool)
	summaries := summaryrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	var processed, rebuilt int
	after := uuid.Nil

	for {
		page, err := records.ListPage(ctx, after, pageSize)
		if err != nil {
			logger.Error("list records", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if len(page) == 0 {
			break
		}

		for _, record := range page {
			withSummary, err := recomputeOne(ctx, tx, records, summaries, record)
			if err != nil {
				logger.Error("recompute record",
					slog.String("record_id", record.ID.String()),
					slog.String("error", err.Error()),
				)
				os.Exit(1)
			}
			processed++
			if withSummary {
				rebuilt++
			}
		}

		after = page[len(page)-1].ID
	}

	logger.Info("recompute completed",
		slog.Int("records", processed),
		slog.Int("summaries_rebuilt", rebuilt),
	)
}

// recomputeOne updates one record's totals and, when a persisted summary
// exists, rebuilds it in the same transaction. Reports whether a summary was
// rebuilt.
func recomputeOne(
	ctx context.Context,
	tx *postgres.TxManager,
	records *mealrecord.Repo,
	summaries *summaryrepo.Repo,
	record *domain.MealRecord,
) (bool, error) {
	meal.Recompute(record)

	_, err := summaries.GetByMealID(ctx, record.UserID, record.ID)
	hasSummary := err == nil
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := records.UpdateDishes(ctx, record.UserID, record.ID, record.Dishes, record.Totals); err != nil {
			return err
		}
		if hasSummary {
			return summaries.Upsert(ctx, record.UserID, record.ID, meal.BuildSummary(record))
		}
		return nil
	})
	return hasSummary, err
}
