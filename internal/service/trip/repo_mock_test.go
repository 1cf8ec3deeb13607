package trip

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

var _ tripRepo = &tripRepoMock{}

type tripRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	ListFunc    func(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)
	CreateFunc  func(ctx context.Context, t *domain.Trip) (*domain.Trip, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.TripUpdateParams) (*domain.Trip, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TripFilter
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Trip
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.TripUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *tripRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	if mock.GetByIDFunc == nil {
		panic("tripRepoMock.GetByIDFunc: method is nil but tripRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *tripRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tripRepoMock) List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	if mock.ListFunc == nil {
		panic("tripRepoMock.ListFunc: method is nil but tripRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TripFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *tripRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TripFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tripRepoMock) Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error) {
	if mock.CreateFunc == nil {
		panic("tripRepoMock.CreateFunc: method is nil but tripRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Trip
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tripRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Trip
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tripRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.TripUpdateParams) (*domain.Trip, error) {
	if mock.UpdateFunc == nil {
		panic("tripRepoMock.UpdateFunc: method is nil but tripRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.TripUpdateParams
	}{
		Ctx:    ctx,
		Id:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *tripRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.TripUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *tripRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tripRepoMock.DeleteFunc: method is nil but tripRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *tripRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
