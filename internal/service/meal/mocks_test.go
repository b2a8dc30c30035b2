package meal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/domain"
)

var _ mealRecordRepo = &mealRecordRepoMock{}

type mealRecordRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID, recordID uuid.UUID) (*domain.MealRecord, error)
	CreateFunc       func(ctx context.Context, record *domain.MealRecord) (*domain.MealRecord, error)
	UpdateDishesFunc func(ctx context.Context, userID, recordID uuid.UUID, dishes []domain.Dish, totals domain.MealTotals) error

	calls struct {
		GetByID []struct {
			UserID   uuid.UUID
			RecordID uuid.UUID
		}
		Create []struct {
			Record *domain.MealRecord
		}
		UpdateDishes []struct {
			UserID   uuid.UUID
			RecordID uuid.UUID
			Dishes   []domain.Dish
			Totals   domain.MealTotals
		}
	}
	lockGetByID      sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdateDishes sync.RWMutex
}

func (mock *mealRecordRepoMock) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.MealRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("mealRecordRepoMock.GetByIDFunc: method is nil but mealRecordRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		RecordID uuid.UUID
	}{UserID: userID, RecordID: recordID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, recordID)
}

func (mock *mealRecordRepoMock) GetByIDCalls() []struct {
	UserID   uuid.UUID
	RecordID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *mealRecordRepoMock) Create(ctx context.Context, record *domain.MealRecord) (*domain.MealRecord, error) {
	if mock.CreateFunc == nil {
		panic("mealRecordRepoMock.CreateFunc: method is nil but mealRecordRepo.Create was just called")
	}
	callInfo := struct {
		Record *domain.MealRecord
	}{Record: record}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, record)
}

func (mock *mealRecordRepoMock) CreateCalls() []struct {
	Record *domain.MealRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mealRecordRepoMock) UpdateDishes(ctx context.Context, userID, recordID uuid.UUID, dishes []domain.Dish, totals domain.MealTotals) error {
	if mock.UpdateDishesFunc == nil {
		panic("mealRecordRepoMock.UpdateDishesFunc: method is nil but mealRecordRepo.UpdateDishes was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		RecordID uuid.UUID
		Dishes   []domain.Dish
		Totals   domain.MealTotals
	}{UserID: userID, RecordID: recordID, Dishes: dishes, Totals: totals}
	mock.lockUpdateDishes.Lock()
	mock.calls.UpdateDishes = append(mock.calls.UpdateDishes, callInfo)
	mock.lockUpdateDishes.Unlock()
	return mock.UpdateDishesFunc(ctx, userID, recordID, dishes, totals)
}

func (mock *mealRecordRepoMock) UpdateDishesCalls() []struct {
	UserID   uuid.UUID
	RecordID uuid.UUID
	Dishes   []domain.Dish
	Totals   domain.MealTotals
} {
	mock.lockUpdateDishes.RLock()
	calls := mock.calls.UpdateDishes
	mock.lockUpdateDishes.RUnlock()
	return calls
}

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	UpsertFunc      func(ctx context.Context, userID, recordID uuid.UUID, summary *domain.Summary) error
	GetByMealIDFunc func(ctx context.Context, userID, recordID uuid.UUID) (*domain.Summary, error)

	calls struct {
		Upsert []struct {
			UserID   uuid.UUID
			RecordID uuid.UUID
			Summary  *domain.Summary
		}
		GetByMealID []struct {
			UserID   uuid.UUID
			RecordID uuid.UUID
		}
	}
	lockUpsert      sync.RWMutex
	lockGetByMealID sync.RWMutex
}

func (mock *summaryRepoMock) Upsert(ctx context.Context, userID, recordID uuid.UUID, summary *domain.Summary) error {
	if mock.UpsertFunc == nil {
		panic("summaryRepoMock.UpsertFunc: method is nil but summaryRepo.Upsert was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		RecordID uuid.UUID
		Summary  *domain.Summary
	}{UserID: userID, RecordID: recordID, Summary: summary}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, recordID, summary)
}

func (mock *summaryRepoMock) UpsertCalls() []struct {
	UserID   uuid.UUID
	RecordID uuid.UUID
	Summary  *domain.Summary
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *summaryRepoMock) GetByMealID(ctx context.Context, userID, recordID uuid.UUID) (*domain.Summary, error) {
	if mock.GetByMealIDFunc == nil {
		panic("summaryRepoMock.GetByMealIDFunc: method is nil but summaryRepo.GetByMealID was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		RecordID uuid.UUID
	}{UserID: userID, RecordID: recordID}
	mock.lockGetByMealID.Lock()
	mock.calls.GetByMealID = append(mock.calls.GetByMealID, callInfo)
	mock.lockGetByMealID.Unlock()
	return mock.GetByMealIDFunc(ctx, userID, recordID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

// passthroughTx runs the callback directly with the given context.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
