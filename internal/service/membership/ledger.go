package membership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// Join adds userID to the trip and fans out a pending vote on every existing
// item. Idempotent: returns false when the user is already a member. Joins
// the caller's transaction when there is one.
func (s *Service) Join(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	_, added, err := s.join(ctx, tripID, userID)
	return added, err
}

func (s *Service) join(ctx context.Context, tripID, userID uuid.UUID) (*domain.Trip, bool, error) {
	if userID == uuid.Nil {
		return nil, false, domain.NewValidationError("user_id", "required")
	}

	var (
		trip    *domain.Trip
		added   bool
		created int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		trip, err = s.trips.GetByID(txCtx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		if _, err := s.users.GetByID(txCtx, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		role := domain.MemberRoleCollaborator
		if userID == trip.LeaderID {
			role = domain.MemberRoleLeader
		}

		added, err = s.members.Add(txCtx, tripID, userID, role)
		if err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		if !added {
			return nil
		}

		created, err = s.votes.FanOutMember(txCtx, tripID, userID)
		if err != nil {
			return err
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeMember,
			EntityID:   &userID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"trip_id": map[string]any{"new": tripID},
				"role":    map[string]any{"new": role.String()},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if added {
		s.log.InfoContext(ctx, "member joined",
			slog.String("trip_id", tripID.String()),
			slog.String("user_id", userID.String()),
			slog.Int("votes_created", created),
		)
	}

	return trip, added, nil
}

// Leave removes userID from the trip together with their votes on every item
// of the trip. The leader cannot leave. Joins the caller's transaction when
// there is one.
func (s *Service) Leave(ctx context.Context, tripID, userID uuid.UUID) error {
	_, err := s.leave(ctx, tripID, userID)
	return err
}

func (s *Service) leave(ctx context.Context, tripID, userID uuid.UUID) (*domain.Trip, error) {
	var (
		trip    *domain.Trip
		removed int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		trip, err = s.trips.GetByID(txCtx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		if userID == trip.LeaderID {
			return domain.NewValidationError("user_id", "cannot remove the trip leader")
		}

		if err := s.members.Remove(txCtx, tripID, userID); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}

		removed, err = s.votes.RemoveMemberVotes(txCtx, tripID, userID)
		if err != nil {
			return err
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeMember,
			EntityID:   &userID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"trip_id":       map[string]any{"old": tripID},
				"votes_removed": removed,
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "member left",
		slog.String("trip_id", tripID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("votes_removed", removed),
	)

	return trip, nil
}

// Enroll records the initial membership snapshot of a freshly created trip.
// The snapshot must already be resolved; see ResolveMembers. A new trip has
// no items, so no votes are created.
func (s *Service) Enroll(ctx context.Context, tripID uuid.UUID, snapshot []uuid.UUID) (int, error) {
	n, err := s.members.AddMany(ctx, tripID, snapshot)
	if err != nil {
		return 0, fmt.Errorf("enroll members: %w", err)
	}
	return n, nil
}

// AddCollaborator adds a user to a trip and invites them. Re-adding an
// existing member is a no-op and sends nothing.
func (s *Service) AddCollaborator(ctx context.Context, tripID, userID uuid.UUID) error {
	trip, added, err := s.join(ctx, tripID, userID)
	if err != nil {
		return err
	}

	if added {
		s.Announce(ctx, *trip, []uuid.UUID{userID}, nil)
	}

	return nil
}

// RemoveCollaborator removes a user and their votes from a trip.
func (s *Service) RemoveCollaborator(ctx context.Context, tripID, userID uuid.UUID) error {
	trip, err := s.leave(ctx, tripID, userID)
	if err != nil {
		return err
	}

	s.Announce(ctx, *trip, nil, []uuid.UUID{userID})
	return nil
}
