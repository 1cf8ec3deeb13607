// Package itinerary manages the candidate items of a trip. Creating an item
// fans out one pending vote per trip member; deleting it clears its votes.
package itinerary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/pkg/ctxutil"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

type tripRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
}

type memberRepo interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type voteEngine interface {
	FanOut(ctx context.Context, itemID uuid.UUID, members []uuid.UUID) (int, error)
	ClearItem(ctx context.Context, itemID uuid.UUID) (int, error)
	ListItemVotes(ctx context.Context, itemID uuid.UUID) ([]domain.Vote, error)
	AgreeStatus() string
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

const (
	MaxNameLength  = 200
	MaxFieldLength = 500
)

// Service provides itinerary item operations.
type Service struct {
	items   itemRepo
	trips   tripRepo
	members memberRepo
	users   userRepo
	votes   voteEngine
	events  publisher
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new itinerary service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	trips tripRepo,
	members memberRepo,
	users userRepo,
	votes voteEngine,
	events publisher,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		items:   items,
		trips:   trips,
		members: members,
		users:   users,
		votes:   votes,
		events:  events,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "itinerary"),
	}
}

func actorID(ctx context.Context) *uuid.UUID {
	return ctxutil.ActorIDFromCtx(ctx)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
