package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/trip"
	"github.com/heartmarshall/tripvote-backend/internal/service/voting"
)

var _ tripService = &tripServiceMock{}

type tripServiceMock struct {
	GetTripFunc    func(ctx context.Context, id uuid.UUID) (*domain.TripDetail, error)
	ListTripsFunc  func(ctx context.Context, filter domain.TripFilter) ([]domain.TripDetail, error)
	CreateTripFunc func(ctx context.Context, input trip.CreateTripInput) (*domain.TripDetail, error)
	UpdateTripFunc func(ctx context.Context, input trip.UpdateTripInput) (*domain.TripDetail, error)
	DeleteTripFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetTrip []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListTrips []struct {
			Ctx    context.Context
			Filter domain.TripFilter
		}
		CreateTrip []struct {
			Ctx   context.Context
			Input trip.CreateTripInput
		}
		UpdateTrip []struct {
			Ctx   context.Context
			Input trip.UpdateTripInput
		}
		DeleteTrip []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetTrip    sync.RWMutex
	lockListTrips  sync.RWMutex
	lockCreateTrip sync.RWMutex
	lockUpdateTrip sync.RWMutex
	lockDeleteTrip sync.RWMutex
}

func (mock *tripServiceMock) GetTrip(ctx context.Context, id uuid.UUID) (*domain.TripDetail, error) {
	if mock.GetTripFunc == nil {
		panic("tripServiceMock.GetTripFunc: method is nil but tripService.GetTrip was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetTrip.Lock()
	mock.calls.GetTrip = append(mock.calls.GetTrip, callInfo)
	mock.lockGetTrip.Unlock()
	return mock.GetTripFunc(ctx, id)
}

func (mock *tripServiceMock) GetTripCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetTrip.RLock()
	calls := mock.calls.GetTrip
	mock.lockGetTrip.RUnlock()
	return calls
}

func (mock *tripServiceMock) ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.TripDetail, error) {
	if mock.ListTripsFunc == nil {
		panic("tripServiceMock.ListTripsFunc: method is nil but tripService.ListTrips was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TripFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListTrips.Lock()
	mock.calls.ListTrips = append(mock.calls.ListTrips, callInfo)
	mock.lockListTrips.Unlock()
	return mock.ListTripsFunc(ctx, filter)
}

func (mock *tripServiceMock) ListTripsCalls() []struct {
	Ctx    context.Context
	Filter domain.TripFilter
} {
	mock.lockListTrips.RLock()
	calls := mock.calls.ListTrips
	mock.lockListTrips.RUnlock()
	return calls
}

func (mock *tripServiceMock) CreateTrip(ctx context.Context, input trip.CreateTripInput) (*domain.TripDetail, error) {
	if mock.CreateTripFunc == nil {
		panic("tripServiceMock.CreateTripFunc: method is nil but tripService.CreateTrip was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input trip.CreateTripInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTrip.Lock()
	mock.calls.CreateTrip = append(mock.calls.CreateTrip, callInfo)
	mock.lockCreateTrip.Unlock()
	return mock.CreateTripFunc(ctx, input)
}

func (mock *tripServiceMock) CreateTripCalls() []struct {
	Ctx   context.Context
	Input trip.CreateTripInput
} {
	mock.lockCreateTrip.RLock()
	calls := mock.calls.CreateTrip
	mock.lockCreateTrip.RUnlock()
	return calls
}

func (mock *tripServiceMock) UpdateTrip(ctx context.Context, input trip.UpdateTripInput) (*domain.TripDetail, error) {
	if mock.UpdateTripFunc == nil {
		panic("tripServiceMock.UpdateTripFunc: method is nil but tripService.UpdateTrip was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input trip.UpdateTripInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateTrip.Lock()
	mock.calls.UpdateTrip = append(mock.calls.UpdateTrip, callInfo)
	mock.lockUpdateTrip.Unlock()
	return mock.UpdateTripFunc(ctx, input)
}

func (mock *tripServiceMock) UpdateTripCalls() []struct {
	Ctx   context.Context
	Input trip.UpdateTripInput
} {
	mock.lockUpdateTrip.RLock()
	calls := mock.calls.UpdateTrip
	mock.lockUpdateTrip.RUnlock()
	return calls
}

func (mock *tripServiceMock) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTripFunc == nil {
		panic("tripServiceMock.DeleteTripFunc: method is nil but tripService.DeleteTrip was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteTrip.Lock()
	mock.calls.DeleteTrip = append(mock.calls.DeleteTrip, callInfo)
	mock.lockDeleteTrip.Unlock()
	return mock.DeleteTripFunc(ctx, id)
}

func (mock *tripServiceMock) DeleteTripCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteTrip.RLock()
	calls := mock.calls.DeleteTrip
	mock.lockDeleteTrip.RUnlock()
	return calls
}

var _ membershipService = &membershipServiceMock{}

type membershipServiceMock struct {
	AddCollaboratorFunc    func(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error
	RemoveCollaboratorFunc func(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error

	calls struct {
		AddCollaborator []struct {
			Ctx    context.Context
			TripID uuid.UUID
			UserID uuid.UUID
		}
		RemoveCollaborator []struct {
			Ctx    context.Context
			TripID uuid.UUID
			UserID uuid.UUID
		}
	}
	lockAddCollaborator    sync.RWMutex
	lockRemoveCollaborator sync.RWMutex
}

func (mock *membershipServiceMock) AddCollaborator(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error {
	if mock.AddCollaboratorFunc == nil {
		panic("membershipServiceMock.AddCollaboratorFunc: method is nil but membershipService.AddCollaborator was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
		UserID: userID,
	}
	mock.lockAddCollaborator.Lock()
	mock.calls.AddCollaborator = append(mock.calls.AddCollaborator, callInfo)
	mock.lockAddCollaborator.Unlock()
	return mock.AddCollaboratorFunc(ctx, tripID, userID)
}

func (mock *membershipServiceMock) AddCollaboratorCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockAddCollaborator.RLock()
	calls := mock.calls.AddCollaborator
	mock.lockAddCollaborator.RUnlock()
	return calls
}

func (mock *membershipServiceMock) RemoveCollaborator(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error {
	if mock.RemoveCollaboratorFunc == nil {
		panic("membershipServiceMock.RemoveCollaboratorFunc: method is nil but membershipService.RemoveCollaborator was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
		UserID: userID,
	}
	mock.lockRemoveCollaborator.Lock()
	mock.calls.RemoveCollaborator = append(mock.calls.RemoveCollaborator, callInfo)
	mock.lockRemoveCollaborator.Unlock()
	return mock.RemoveCollaboratorFunc(ctx, tripID, userID)
}

func (mock *membershipServiceMock) RemoveCollaboratorCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockRemoveCollaborator.RLock()
	calls := mock.calls.RemoveCollaborator
	mock.lockRemoveCollaborator.RUnlock()
	return calls
}

var _ reconciler = &reconcilerMock{}

type reconcilerMock struct {
	ReconcileFunc func(ctx context.Context, tripID uuid.UUID) (voting.ReconcileResult, error)

	calls struct {
		Reconcile []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
	}
	lockReconcile sync.RWMutex
}

func (mock *reconcilerMock) Reconcile(ctx context.Context, tripID uuid.UUID) (voting.ReconcileResult, error) {
	if mock.ReconcileFunc == nil {
		panic("reconcilerMock.ReconcileFunc: method is nil but reconciler.Reconcile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
	}
	mock.lockReconcile.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, callInfo)
	mock.lockReconcile.Unlock()
	return mock.ReconcileFunc(ctx, tripID)
}

func (mock *reconcilerMock) ReconcileCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockReconcile.RLock()
	calls := mock.calls.Reconcile
	mock.lockReconcile.RUnlock()
	return calls
}
