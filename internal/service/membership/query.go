package membership

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// ResolveMembers turns a leader and a collaborator list into live users,
// leader first, duplicates collapsed. Any unknown id fails with
// domain.ErrNotFound naming that id. Nothing is written.
func (s *Service) ResolveMembers(ctx context.Context, leaderID uuid.UUID, collaboratorIDs []uuid.UUID) ([]domain.User, error) {
	if leaderID == uuid.Nil {
		return nil, domain.NewValidationError("leader_id", "required")
	}

	snapshot := domain.MembershipSnapshot(leaderID, collaboratorIDs)

	found, err := s.users.GetByIDs(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("resolve members: %w", err)
	}

	byID := make(map[uuid.UUID]domain.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	users := make([]domain.User, 0, len(snapshot))
	for _, id := range snapshot {
		u, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		users = append(users, u)
	}

	return users, nil
}

// ListMembers returns the membership of a trip, leader first then join
// order. Returns domain.ErrNotFound for an unknown trip.
func (s *Service) ListMembers(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	members, err := s.members.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return members, nil
}
