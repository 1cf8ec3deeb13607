package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/trip/dataloader"
)

// GetTrip returns a trip with its members expanded to users and its items in
// order with their votes and consensus. Voters are not expanded.
func (s *Service) GetTrip(ctx context.Context, id uuid.UUID) (*domain.TripDetail, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	return s.assemble(ctx, dataloader.NewLoaders(s.loaders), *t)
}

// listConcurrency caps how many trips ListTrips assembles at once.
const listConcurrency = 16

// ListTrips returns every trip matching filter in creation order, in the
// same shape as GetTrip. Trips are assembled concurrently over one set of
// loaders, so users, members, items and votes are each fetched in batches.
func (s *Service) ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.TripDetail, error) {
	trips, err := s.trips.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	loaders := dataloader.NewLoaders(s.loaders)
	out := make([]domain.TripDetail, len(trips))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, t := range trips {
		g.Go(func() error {
			d, err := s.assemble(gctx, loaders, t)
			if err != nil {
				return err
			}
			out[i] = *d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Service) assemble(ctx context.Context, loaders *dataloader.Loaders, t domain.Trip) (*domain.TripDetail, error) {
	membersThunk := loaders.MembersByTripID.Load(ctx, t.ID)
	itemsThunk := loaders.ItemsByTripID.Load(ctx, t.ID)

	members, err := membersThunk()
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	items, err := itemsThunk()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	// Queue every lookup before waiting on any, so each loader sees one batch.
	userThunks := make([]func() (*domain.User, error), len(members))
	for i, m := range members {
		userThunks[i] = loaders.UserByID.Load(ctx, m.UserID)
	}
	voteThunks := make([]func() ([]domain.Vote, error), len(items))
	for i, it := range items {
		voteThunks[i] = loaders.VotesByItemID.Load(ctx, it.ID)
	}

	detail := &domain.TripDetail{
		Trip:          t,
		Collaborators: make([]domain.User, 0, len(members)),
		Items:         make([]domain.ItemDetail, 0, len(items)),
	}

	for i, m := range members {
		u, err := userThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load user: %w", err)
		}
		if u == nil {
			return nil, fmt.Errorf("user %s: %w", m.UserID, domain.ErrNotFound)
		}
		if u.ID == t.LeaderID {
			detail.Leader = *u
		}
		detail.Collaborators = append(detail.Collaborators, *u)
	}

	for i, it := range items {
		votes, err := voteThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load votes: %w", err)
		}
		detail.Items = append(detail.Items, domain.NewItemDetail(it, votes, nil, s.cfg.AgreeStatus))
	}

	return detail, nil
}
