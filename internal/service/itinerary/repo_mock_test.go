package itinerary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	CreateFunc  func(ctx context.Context, it *domain.Item) (*domain.Item, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	DeleteFunc  func(ctx context.Context, tripID uuid.UUID, itemID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			It  *domain.Item
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.ItemUpdateParams
		}
		Delete []struct {
			Ctx    context.Context
			TripID uuid.UUID
			ItemID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
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

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  *domain.Item
	}{
		Ctx: ctx,
		It:  it,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx context.Context
	It  *domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.ItemUpdateParams
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

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.ItemUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, tripID uuid.UUID, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
		ItemID: itemID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tripID, itemID)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ tripRepo = &tripRepoMock{}

type tripRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Trip, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	ListByTripFunc func(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error)

	calls struct {
		ListByTrip []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
	}
	lockListByTrip sync.RWMutex
}

func (mock *memberRepoMock) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error) {
	if mock.ListByTripFunc == nil {
		panic("memberRepoMock.ListByTripFunc: method is nil but memberRepo.ListByTrip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
	}
	mock.lockListByTrip.Lock()
	mock.calls.ListByTrip = append(mock.calls.ListByTrip, callInfo)
	mock.lockListByTrip.Unlock()
	return mock.ListByTripFunc(ctx, tripID)
}

func (mock *memberRepoMock) ListByTripCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockListByTrip.RLock()
	calls := mock.calls.ListByTrip
	mock.lockListByTrip.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but userRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
