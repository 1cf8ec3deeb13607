// Package membership manages who belongs to a trip. Every membership change
// keeps the vote set in step: joining fans out votes on existing items and
// leaving deletes the member's votes, in the same transaction.
package membership

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/pkg/ctxutil"
)

type memberRepo interface {
	Add(ctx context.Context, tripID, userID uuid.UUID, role domain.MemberRole) (bool, error)
	AddMany(ctx context.Context, tripID uuid.UUID, userIDs []uuid.UUID) (int, error)
	Remove(ctx context.Context, tripID, userID uuid.UUID) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error)
}

type tripRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type voteEngine interface {
	FanOutMember(ctx context.Context, tripID, userID uuid.UUID) (int, error)
	RemoveMemberVotes(ctx context.Context, tripID, userID uuid.UUID) (int, error)
}

type notifier interface {
	NotifyInvite(ctx context.Context, inv domain.Invitation) error
}

type publisher interface {
	Publish(ctx context.Context, event domain.TripEvent)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the membership ledger.
type Service struct {
	members memberRepo
	trips   tripRepo
	users   userRepo
	votes   voteEngine
	notify  notifier
	events  publisher
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new membership service.
func NewService(
	log *slog.Logger,
	members memberRepo,
	trips tripRepo,
	users userRepo,
	votes voteEngine,
	notify notifier,
	events publisher,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		members: members,
		trips:   trips,
		users:   users,
		votes:   votes,
		notify:  notify,
		events:  events,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "membership"),
	}
}

func actorID(ctx context.Context) *uuid.UUID {
	return ctxutil.ActorIDFromCtx(ctx)
}
