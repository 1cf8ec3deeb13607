package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// User by ID (nullable)
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			u := users[i]
			byID[u.ID] = &u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Members by TripID
// ---------------------------------------------------------------------------

func newMembersBatchFn(repo memberRepo) dataloader.BatchFunc[uuid.UUID, []domain.Member] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Member] {
		members, err := repo.ListByTripIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Member](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Member, len(keys))
		for _, m := range members {
			grouped[m.TripID] = append(grouped[m.TripID], m)
		}

		return mapResults(keys, grouped, emptySlice[domain.Member])
	}
}

// ---------------------------------------------------------------------------
// Items by TripID
// ---------------------------------------------------------------------------

func newItemsBatchFn(repo itemRepo) dataloader.BatchFunc[uuid.UUID, []domain.Item] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Item] {
		items, err := repo.ListByTripIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Item](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Item, len(keys))
		for _, it := range items {
			grouped[it.TripID] = append(grouped[it.TripID], it)
		}

		return mapResults(keys, grouped, emptySlice[domain.Item])
	}
}

// ---------------------------------------------------------------------------
// Votes by ItemID
// ---------------------------------------------------------------------------

func newVotesBatchFn(repo voteRepo) dataloader.BatchFunc[uuid.UUID, []domain.Vote] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Vote] {
		votes, err := repo.ListByItemIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Vote](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Vote, len(keys))
		for _, v := range votes {
			grouped[v.ItemID] = append(grouped[v.ItemID], v)
		}

		return mapResults(keys, grouped, emptySlice[domain.Vote])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
