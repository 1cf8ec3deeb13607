package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc    func(ctx context.Context) ([]domain.User, error)
	CreateFunc  func(ctx context.Context, u *domain.User) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ membershipRepo = &membershipRepoMock{}

type membershipRepoMock struct {
	TripIDsByUserFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		TripIDsByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockTripIDsByUser sync.RWMutex
}

func (mock *membershipRepoMock) TripIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.TripIDsByUserFunc == nil {
		panic("membershipRepoMock.TripIDsByUserFunc: method is nil but membershipRepo.TripIDsByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockTripIDsByUser.Lock()
	mock.calls.TripIDsByUser = append(mock.calls.TripIDsByUser, callInfo)
	mock.lockTripIDsByUser.Unlock()
	return mock.TripIDsByUserFunc(ctx, userID)
}

func (mock *membershipRepoMock) TripIDsByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockTripIDsByUser.RLock()
	calls := mock.calls.TripIDsByUser
	mock.lockTripIDsByUser.RUnlock()
	return calls
}
