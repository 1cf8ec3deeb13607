package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// UpdateItem applies a partial update. Flight and lodging blocks must match
// the stored item type.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.ItemDetail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		item  *domain.Item
		votes []domain.Vote
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.items.GetByID(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		if errs := domain.CheckDetails(old.Type, input.Flight, input.Lodging); len(errs) > 0 {
			return domain.NewValidationErrors(errs)
		}

		params := input.params()
		item, err = s.items.Update(txCtx, input.ItemID, params)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		votes, err = s.votes.ListItemVotes(txCtx, item.ID)
		if err != nil {
			return err
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeItem,
			EntityID:   &item.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    itemChanges(old, item),
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item updated",
		slog.String("trip_id", item.TripID.String()),
		slog.String("item_id", item.ID.String()),
	)

	detail := domain.NewItemDetail(*item, votes, nil, s.votes.AgreeStatus())
	return &detail, nil
}

func itemChanges(old, updated *domain.Item) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Confirmed != updated.Confirmed {
		changes["confirmed"] = map[string]any{"old": old.Confirmed, "new": updated.Confirmed}
	}
	if deref(old.Price) != deref(updated.Price) {
		changes["price"] = map[string]any{"old": deref(old.Price), "new": deref(updated.Price)}
	}
	if deref(old.Location) != deref(updated.Location) {
		changes["location"] = map[string]any{"old": deref(old.Location), "new": deref(updated.Location)}
	}
	if deref(old.Website) != deref(updated.Website) {
		changes["website"] = map[string]any{"old": deref(old.Website), "new": deref(updated.Website)}
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
