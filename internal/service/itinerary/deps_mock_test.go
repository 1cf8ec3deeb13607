package itinerary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

var _ voteEngine = &voteEngineMock{}

type voteEngineMock struct {
	FanOutFunc        func(ctx context.Context, itemID uuid.UUID, members []uuid.UUID) (int, error)
	ClearItemFunc     func(ctx context.Context, itemID uuid.UUID) (int, error)
	ListItemVotesFunc func(ctx context.Context, itemID uuid.UUID) ([]domain.Vote, error)
	AgreeStatusFunc   func() string

	calls struct {
		FanOut []struct {
			Ctx     context.Context
			ItemID  uuid.UUID
			Members []uuid.UUID
		}
		ClearItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		ListItemVotes []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		AgreeStatus []struct{}
	}
	lockFanOut        sync.RWMutex
	lockClearItem     sync.RWMutex
	lockListItemVotes sync.RWMutex
	lockAgreeStatus   sync.RWMutex
}

func (mock *voteEngineMock) FanOut(ctx context.Context, itemID uuid.UUID, members []uuid.UUID) (int, error) {
	if mock.FanOutFunc == nil {
		panic("voteEngineMock.FanOutFunc: method is nil but voteEngine.FanOut was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ItemID  uuid.UUID
		Members []uuid.UUID
	}{
		Ctx:     ctx,
		ItemID:  itemID,
		Members: members,
	}
	mock.lockFanOut.Lock()
	mock.calls.FanOut = append(mock.calls.FanOut, callInfo)
	mock.lockFanOut.Unlock()
	return mock.FanOutFunc(ctx, itemID, members)
}

func (mock *voteEngineMock) FanOutCalls() []struct {
	Ctx     context.Context
	ItemID  uuid.UUID
	Members []uuid.UUID
} {
	mock.lockFanOut.RLock()
	calls := mock.calls.FanOut
	mock.lockFanOut.RUnlock()
	return calls
}

func (mock *voteEngineMock) ClearItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	if mock.ClearItemFunc == nil {
		panic("voteEngineMock.ClearItemFunc: method is nil but voteEngine.ClearItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockClearItem.Lock()
	mock.calls.ClearItem = append(mock.calls.ClearItem, callInfo)
	mock.lockClearItem.Unlock()
	return mock.ClearItemFunc(ctx, itemID)
}

func (mock *voteEngineMock) ClearItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockClearItem.RLock()
	calls := mock.calls.ClearItem
	mock.lockClearItem.RUnlock()
	return calls
}

func (mock *voteEngineMock) ListItemVotes(ctx context.Context, itemID uuid.UUID) ([]domain.Vote, error) {
	if mock.ListItemVotesFunc == nil {
		panic("voteEngineMock.ListItemVotesFunc: method is nil but voteEngine.ListItemVotes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockListItemVotes.Lock()
	mock.calls.ListItemVotes = append(mock.calls.ListItemVotes, callInfo)
	mock.lockListItemVotes.Unlock()
	return mock.ListItemVotesFunc(ctx, itemID)
}

func (mock *voteEngineMock) ListItemVotesCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockListItemVotes.RLock()
	calls := mock.calls.ListItemVotes
	mock.lockListItemVotes.RUnlock()
	return calls
}

func (mock *voteEngineMock) AgreeStatus() string {
	if mock.AgreeStatusFunc == nil {
		panic("voteEngineMock.AgreeStatusFunc: method is nil but voteEngine.AgreeStatus was just called")
	}
	callInfo := struct{}{}
	mock.lockAgreeStatus.Lock()
	mock.calls.AgreeStatus = append(mock.calls.AgreeStatus, callInfo)
	mock.lockAgreeStatus.Unlock()
	return mock.AgreeStatusFunc()
}

func (mock *voteEngineMock) AgreeStatusCalls() []struct{} {
	mock.lockAgreeStatus.RLock()
	calls := mock.calls.AgreeStatus
	mock.lockAgreeStatus.RUnlock()
	return calls
}

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(ctx context.Context, event domain.TripEvent)

	calls struct {
		Publish []struct {
			Ctx   context.Context
			Event domain.TripEvent
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(ctx context.Context, event domain.TripEvent) {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.TripEvent
	}{
		Ctx:   ctx,
		Event: event,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, event)
}

func (mock *publisherMock) PublishCalls() []struct {
	Ctx   context.Context
	Event domain.TripEvent
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
