package trip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// DeleteTrip removes a trip together with its members, items and votes.
// Users are untouched.
func (s *Service) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.trips.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		if err := s.trips.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete trip: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeTrip,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "trip deleted", slog.String("trip_id", id.String()))
	return nil
}
