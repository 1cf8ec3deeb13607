// Package voting is the vote fan-out engine. It keeps one vote per
// (item, trip member) pair in step with item and membership changes and
// derives consensus from the live vote set on every read.
package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/config"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/pkg/ctxutil"
)

type voteRepo interface {
	InsertMissing(ctx context.Context, itemIDs, userIDs []uuid.UUID) (int, error)
	InsertForMember(ctx context.Context, tripID, userID uuid.UUID) (int, error)
	InsertForTrip(ctx context.Context, tripID uuid.UUID) (int, error)
	DeleteByItem(ctx context.Context, itemID uuid.UUID) (int, error)
	DeleteByMember(ctx context.Context, tripID, userID uuid.UUID) (int, error)
	DeleteNonMembers(ctx context.Context, tripID uuid.UUID) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Vote, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Vote, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}

type tripRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, event domain.TripEvent)
}

// Service provides vote fan-out, cleanup and status updates.
type Service struct {
	votes  voteRepo
	items  itemRepo
	trips  tripRepo
	users  userRepo
	audit  auditLogger
	tx     txManager
	events publisher
	log    *slog.Logger
	cfg    config.VotingConfig
}

// NewService creates a new Voting service.
func NewService(
	log *slog.Logger,
	votes voteRepo,
	items itemRepo,
	trips tripRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
	events publisher,
	cfg config.VotingConfig,
) *Service {
	return &Service{
		votes:  votes,
		items:  items,
		trips:  trips,
		users:  users,
		audit:  audit,
		tx:     tx,
		events: events,
		log:    log.With("service", "voting"),
		cfg:    cfg,
	}
}

// AgreeStatus returns the status every vote must carry for an item to be
// confirmed.
func (s *Service) AgreeStatus() string {
	return s.cfg.AgreeStatus
}

// Consensus derives the consensus of a vote set with the configured agree
// status.
func (s *Service) Consensus(votes []domain.Vote) domain.Consensus {
	return domain.ComputeConsensus(votes, s.cfg.AgreeStatus)
}

// ListItemVotes returns the live vote set of an item.
func (s *Service) ListItemVotes(ctx context.Context, itemID uuid.UUID) ([]domain.Vote, error) {
	votes, err := s.votes.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item votes: %w", err)
	}
	return votes, nil
}

// actorID returns the authenticated user for audit records, or nil.
func actorID(ctx context.Context) *uuid.UUID {
	return ctxutil.ActorIDFromCtx(ctx)
}
