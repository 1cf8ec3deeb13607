// Package dataloader provides per-call DataLoaders that batch the lookups of
// trip aggregate assembly into single SQL calls. Loaders call repositories
// directly and cache results for their lifetime, so a fresh set is created
// for every read operation.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type memberRepo interface {
	ListByTripIDs(ctx context.Context, tripIDs []uuid.UUID) ([]domain.Member, error)
}

type itemRepo interface {
	ListByTripIDs(ctx context.Context, tripIDs []uuid.UUID) ([]domain.Item, error)
}

type voteRepo interface {
	ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]domain.Vote, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User   userRepo
	Member memberRepo
	Item   itemRepo
	Vote   voteRepo
}

// Loaders contains the DataLoaders used to assemble trips.
type Loaders struct {
	UserByID        *dataloader.Loader[uuid.UUID, *domain.User]
	MembersByTripID *dataloader.Loader[uuid.UUID, []domain.Member]
	ItemsByTripID   *dataloader.Loader[uuid.UUID, []domain.Item]
	VotesByItemID   *dataloader.Loader[uuid.UUID, []domain.Vote]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Loaders cache results, so create a set per operation.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:        newLoader(newUserBatchFn(repos.User)),
		MembersByTripID: newLoader(newMembersBatchFn(repos.Member)),
		ItemsByTripID:   newLoader(newItemsBatchFn(repos.Item)),
		VotesByItemID:   newLoader(newVotesBatchFn(repos.Vote)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}
