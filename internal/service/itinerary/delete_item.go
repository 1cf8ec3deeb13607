package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// DeleteItem removes an item and all its votes in one transaction. The item
// must belong to tripID; if vote cleanup fails the item stays.
func (s *Service) DeleteItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	var removed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.TripID != tripID {
			return fmt.Errorf("item %s in trip %s: %w", itemID, tripID, domain.ErrNotFound)
		}

		removed, err = s.votes.ClearItem(txCtx, itemID)
		if err != nil {
			return err
		}

		if err := s.items.Delete(txCtx, tripID, itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeItem,
			EntityID:   &itemID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":          map[string]any{"old": item.Name},
				"votes_removed": removed,
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, domain.TripEvent{
		Type:       domain.EventItemDeleted,
		TripID:     tripID,
		ItemID:     &itemID,
		OccurredAt: time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "item deleted",
		slog.String("trip_id", tripID.String()),
		slog.String("item_id", itemID.String()),
		slog.Int("votes_removed", removed),
	)

	return nil
}
