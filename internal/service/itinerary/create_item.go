package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// CreateItem appends an item to the trip's itinerary and fans out one pending
// vote per current member in the same transaction.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.ItemDetail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		item    *domain.Item
		votes   []domain.Vote
		created int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.trips.GetByID(txCtx, input.TripID); err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		var err error
		item, err = s.items.Create(txCtx, &domain.Item{
			ID:        uuid.New(),
			TripID:    input.TripID,
			Type:      input.Type,
			Name:      strings.TrimSpace(input.Name),
			Confirmed: input.Confirmed,
			Price:     trimOrNil(input.Price),
			Location:  trimOrNil(input.Location),
			Website:   trimOrNil(input.Website),
			Details:   domain.ItemDetails{Flight: input.Flight, Lodging: input.Lodging},
		})
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		members, err := s.members.ListByTrip(txCtx, input.TripID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}

		created, err = s.votes.FanOut(txCtx, item.ID, domain.MemberIDs(members))
		if err != nil {
			return err
		}

		votes, err = s.votes.ListItemVotes(txCtx, item.ID)
		if err != nil {
			return err
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeItem,
			EntityID:   &item.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"trip_id": map[string]any{"new": item.TripID},
				"name":    map[string]any{"new": item.Name},
				"type":    map[string]any{"new": item.Type.String()},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.TripEvent{
		Type:       domain.EventItemCreated,
		TripID:     item.TripID,
		ItemID:     &item.ID,
		OccurredAt: time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "item created",
		slog.String("trip_id", item.TripID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("type", item.Type.String()),
		slog.Int("votes_created", created),
	)

	detail := domain.NewItemDetail(*item, votes, nil, s.votes.AgreeStatus())
	return &detail, nil
}
