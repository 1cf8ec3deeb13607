package trip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// CreateTrip resolves the leader and collaborators to live users, then
// inserts the trip and its membership in one transaction. An unknown user id
// fails before anything is written.
func (s *Service) CreateTrip(ctx context.Context, input CreateTripInput) (*domain.TripDetail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	users, err := s.members.ResolveMembers(ctx, input.LeaderID, input.CollaboratorIDs)
	if err != nil {
		return nil, err
	}

	snapshot := make([]uuid.UUID, len(users))
	for i, u := range users {
		snapshot[i] = u.ID
	}

	var created *domain.Trip
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.trips.Create(txCtx, &domain.Trip{
			ID:        uuid.New(),
			Name:      strings.TrimSpace(input.Name),
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Location:  trimOrNil(input.Location),
			LeaderID:  input.LeaderID,
		})
		if err != nil {
			return fmt.Errorf("create trip: %w", err)
		}

		if _, err := s.members.Enroll(txCtx, created.ID, snapshot); err != nil {
			return err
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeTrip,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":      map[string]any{"new": created.Name},
				"leader_id": map[string]any{"new": created.LeaderID},
				"members":   len(snapshot),
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.members.Announce(ctx, *created, snapshot, nil)

	s.log.InfoContext(ctx, "trip created",
		slog.String("trip_id", created.ID.String()),
		slog.String("leader_id", created.LeaderID.String()),
		slog.Int("members", len(snapshot)),
	)

	return s.GetTrip(ctx, created.ID)
}
