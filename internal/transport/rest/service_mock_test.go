package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/itinerary"
	"github.com/heartmarshall/tripvote-backend/internal/service/user"
	"github.com/heartmarshall/tripvote-backend/internal/service/voting"
)

var _ itemService = &itemServiceMock{}

type itemServiceMock struct {
	CreateItemFunc func(ctx context.Context, input itinerary.CreateItemInput) (*domain.ItemDetail, error)
	GetItemFunc    func(ctx context.Context, tripID uuid.UUID, itemID uuid.UUID) (*domain.ItemDetail, error)
	UpdateItemFunc func(ctx context.Context, input itinerary.UpdateItemInput) (*domain.ItemDetail, error)
	DeleteItemFunc func(ctx context.Context, tripID uuid.UUID, itemID uuid.UUID) error

	calls struct {
		CreateItem []struct {
			Ctx   context.Context
			Input itinerary.CreateItemInput
		}
		GetItem []struct {
			Ctx    context.Context
			TripID uuid.UUID
			ItemID uuid.UUID
		}
		UpdateItem []struct {
			Ctx   context.Context
			Input itinerary.UpdateItemInput
		}
		DeleteItem []struct {
			Ctx    context.Context
			TripID uuid.UUID
			ItemID uuid.UUID
		}
	}
	lockCreateItem sync.RWMutex
	lockGetItem    sync.RWMutex
	lockUpdateItem sync.RWMutex
	lockDeleteItem sync.RWMutex
}

func (mock *itemServiceMock) CreateItem(ctx context.Context, input itinerary.CreateItemInput) (*domain.ItemDetail, error) {
	if mock.CreateItemFunc == nil {
		panic("itemServiceMock.CreateItemFunc: method is nil but itemService.CreateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input itinerary.CreateItemInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, input)
}

func (mock *itemServiceMock) CreateItemCalls() []struct {
	Ctx   context.Context
	Input itinerary.CreateItemInput
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *itemServiceMock) GetItem(ctx context.Context, tripID uuid.UUID, itemID uuid.UUID) (*domain.ItemDetail, error) {
	if mock.GetItemFunc == nil {
		panic("itemServiceMock.GetItemFunc: method is nil but itemService.GetItem was just called")
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
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, tripID, itemID)
}

func (mock *itemServiceMock) GetItemCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *itemServiceMock) UpdateItem(ctx context.Context, input itinerary.UpdateItemInput) (*domain.ItemDetail, error) {
	if mock.UpdateItemFunc == nil {
		panic("itemServiceMock.UpdateItemFunc: method is nil but itemService.UpdateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input itinerary.UpdateItemInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateItem.Lock()
	mock.calls.UpdateItem = append(mock.calls.UpdateItem, callInfo)
	mock.lockUpdateItem.Unlock()
	return mock.UpdateItemFunc(ctx, input)
}

func (mock *itemServiceMock) UpdateItemCalls() []struct {
	Ctx   context.Context
	Input itinerary.UpdateItemInput
} {
	mock.lockUpdateItem.RLock()
	calls := mock.calls.UpdateItem
	mock.lockUpdateItem.RUnlock()
	return calls
}

func (mock *itemServiceMock) DeleteItem(ctx context.Context, tripID uuid.UUID, itemID uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("itemServiceMock.DeleteItemFunc: method is nil but itemService.DeleteItem was just called")
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
	mock.lockDeleteItem.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lockDeleteItem.Unlock()
	return mock.DeleteItemFunc(ctx, tripID, itemID)
}

func (mock *itemServiceMock) DeleteItemCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockDeleteItem.RLock()
	calls := mock.calls.DeleteItem
	mock.lockDeleteItem.RUnlock()
	return calls
}

var _ voteService = &voteServiceMock{}

type voteServiceMock struct {
	GetVoteFunc    func(ctx context.Context, voteID uuid.UUID) (*domain.VoteDetail, error)
	UpdateVoteFunc func(ctx context.Context, input voting.UpdateVoteInput) (*domain.VoteDetail, error)

	calls struct {
		GetVote []struct {
			Ctx    context.Context
			VoteID uuid.UUID
		}
		UpdateVote []struct {
			Ctx   context.Context
			Input voting.UpdateVoteInput
		}
	}
	lockGetVote    sync.RWMutex
	lockUpdateVote sync.RWMutex
}

func (mock *voteServiceMock) GetVote(ctx context.Context, voteID uuid.UUID) (*domain.VoteDetail, error) {
	if mock.GetVoteFunc == nil {
		panic("voteServiceMock.GetVoteFunc: method is nil but voteService.GetVote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		VoteID uuid.UUID
	}{
		Ctx:    ctx,
		VoteID: voteID,
	}
	mock.lockGetVote.Lock()
	mock.calls.GetVote = append(mock.calls.GetVote, callInfo)
	mock.lockGetVote.Unlock()
	return mock.GetVoteFunc(ctx, voteID)
}

func (mock *voteServiceMock) GetVoteCalls() []struct {
	Ctx    context.Context
	VoteID uuid.UUID
} {
	mock.lockGetVote.RLock()
	calls := mock.calls.GetVote
	mock.lockGetVote.RUnlock()
	return calls
}

func (mock *voteServiceMock) UpdateVote(ctx context.Context, input voting.UpdateVoteInput) (*domain.VoteDetail, error) {
	if mock.UpdateVoteFunc == nil {
		panic("voteServiceMock.UpdateVoteFunc: method is nil but voteService.UpdateVote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input voting.UpdateVoteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateVote.Lock()
	mock.calls.UpdateVote = append(mock.calls.UpdateVote, callInfo)
	mock.lockUpdateVote.Unlock()
	return mock.UpdateVoteFunc(ctx, input)
}

func (mock *voteServiceMock) UpdateVoteCalls() []struct {
	Ctx   context.Context
	Input voting.UpdateVoteInput
} {
	mock.lockUpdateVote.RLock()
	calls := mock.calls.UpdateVote
	mock.lockUpdateVote.RUnlock()
	return calls
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	RegisterFunc  func(ctx context.Context, input user.RegisterInput) (*domain.User, error)
	GetUserFunc   func(ctx context.Context, id uuid.UUID) (*domain.UserWithTrips, error)
	ListUsersFunc func(ctx context.Context) ([]domain.User, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input user.RegisterInput
		}
		GetUser []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListUsers []struct {
			Ctx context.Context
		}
	}
	lockRegister  sync.RWMutex
	lockGetUser   sync.RWMutex
	lockListUsers sync.RWMutex
}

func (mock *userServiceMock) Register(ctx context.Context, input user.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("userServiceMock.RegisterFunc: method is nil but userService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *userServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input user.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.UserWithTrips, error) {
	if mock.GetUserFunc == nil {
		panic("userServiceMock.GetUserFunc: method is nil but userService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *userServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}
