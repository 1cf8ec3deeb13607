package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// GetUser returns a user together with the ids of the trips they belong to.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.UserWithTrips, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	tripIDs, err := s.members.TripIDsByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user trips: %w", err)
	}

	return &domain.UserWithTrips{User: *u, TripIDs: tripIDs}, nil
}

// ListUsers returns every user ordered by username.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
