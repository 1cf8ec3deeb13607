package membership

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// Announce sends invitations to added users and publishes membership events
// to the trip feed. Call it after the membership change has committed.
// Notification failures are logged and never returned.
func (s *Service) Announce(ctx context.Context, trip domain.Trip, added, removed []uuid.UUID) {
	invitedBy := actorID(ctx)
	now := time.Now().UTC()

	for _, userID := range added {
		if userID == trip.LeaderID {
			continue
		}

		err := s.notify.NotifyInvite(ctx, domain.Invitation{
			TripID:    trip.ID,
			TripName:  trip.Name,
			UserID:    userID,
			InvitedBy: invitedBy,
		})
		if err != nil {
			s.log.WarnContext(ctx, "invite notification failed",
				slog.String("trip_id", trip.ID.String()),
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}

		s.events.Publish(ctx, domain.TripEvent{
			Type:       domain.EventMemberAdded,
			TripID:     trip.ID,
			UserID:     &userID,
			OccurredAt: now,
		})
	}

	for _, userID := range removed {
		s.events.Publish(ctx, domain.TripEvent{
			Type:       domain.EventMemberRemoved,
			TripID:     trip.ID,
			UserID:     &userID,
			OccurredAt: now,
		})
	}
}
