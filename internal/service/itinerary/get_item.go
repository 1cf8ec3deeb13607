package itinerary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// GetItem returns an item of tripID with every vote's voter expanded.
func (s *Service) GetItem(ctx context.Context, tripID, itemID uuid.UUID) (*domain.ItemDetail, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item.TripID != tripID {
		return nil, fmt.Errorf("item %s in trip %s: %w", itemID, tripID, domain.ErrNotFound)
	}

	votes, err := s.votes.ListItemVotes(ctx, itemID)
	if err != nil {
		return nil, err
	}

	voterIDs := make([]uuid.UUID, len(votes))
	for i, v := range votes {
		voterIDs[i] = v.UserID
	}

	voters, err := s.users.GetByIDs(ctx, voterIDs)
	if err != nil {
		return nil, fmt.Errorf("get voters: %w", err)
	}

	byID := make(map[uuid.UUID]domain.User, len(voters))
	for _, u := range voters {
		byID[u.ID] = u
	}

	detail := domain.NewItemDetail(*item, votes, byID, s.votes.AgreeStatus())
	return &detail, nil
}
