// Package trip assembles and mutates the trip aggregate: the trip record,
// its membership and its ordered itinerary with votes and consensus.
package trip

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/config"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/trip/dataloader"
	"github.com/heartmarshall/tripvote-backend/pkg/ctxutil"
)

type tripRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)
	Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TripUpdateParams) (*domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ledger interface {
	ResolveMembers(ctx context.Context, leaderID uuid.UUID, collaboratorIDs []uuid.UUID) ([]domain.User, error)
	Enroll(ctx context.Context, tripID uuid.UUID, snapshot []uuid.UUID) (int, error)
	ListMembers(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error)
	Join(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
	Leave(ctx context.Context, tripID, userID uuid.UUID) error
	Announce(ctx context.Context, trip domain.Trip, added, removed []uuid.UUID)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const MaxNameLength = 200

// Service provides trip aggregate operations.
type Service struct {
	trips   tripRepo
	members ledger
	loaders *dataloader.Repos
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
	cfg     config.VotingConfig
}

// NewService creates a new trip service. loaders backs the per-call
// DataLoaders used to assemble trips.
func NewService(
	log *slog.Logger,
	trips tripRepo,
	members ledger,
	loaders *dataloader.Repos,
	audit auditLogger,
	tx txManager,
	cfg config.VotingConfig,
) *Service {
	return &Service{
		trips:   trips,
		members: members,
		loaders: loaders,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "trip"),
		cfg:     cfg,
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
