package voting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// GetVote returns a vote with its voter expanded.
func (s *Service) GetVote(ctx context.Context, voteID uuid.UUID) (*domain.VoteDetail, error) {
	v, err := s.votes.GetByID(ctx, voteID)
	if err != nil {
		return nil, fmt.Errorf("get vote: %w", err)
	}

	return s.expand(ctx, v)
}

// UpdateVote casts a vote: only the status changes, never the (item, user)
// pair. An empty status is rejected, so a cast vote never returns to pending.
func (s *Service) UpdateVote(ctx context.Context, input UpdateVoteInput) (*domain.VoteDetail, error) {
	if err := input.Validate(s.cfg.MaxStatusLength); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)

	var (
		updated *domain.Vote
		item    *domain.Item
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.votes.GetByID(txCtx, input.VoteID)
		if err != nil {
			return fmt.Errorf("get vote: %w", err)
		}

		updated, err = s.votes.UpdateStatus(txCtx, input.VoteID, status)
		if err != nil {
			return fmt.Errorf("update vote: %w", err)
		}

		item, err = s.items.GetByID(txCtx, updated.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeVote,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"status": map[string]any{"old": old.Status, "new": status},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.TripEvent{
		Type:       domain.EventVoteUpdated,
		TripID:     item.TripID,
		ItemID:     &updated.ItemID,
		VoteID:     &updated.ID,
		UserID:     &updated.UserID,
		Status:     &updated.Status,
		OccurredAt: time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "vote cast",
		slog.String("vote_id", updated.ID.String()),
		slog.String("item_id", updated.ItemID.String()),
		slog.String("user_id", updated.UserID.String()),
		slog.String("status", status),
	)

	return s.expand(ctx, updated)
}

func (s *Service) expand(ctx context.Context, v *domain.Vote) (*domain.VoteDetail, error) {
	voter, err := s.users.GetByID(ctx, v.UserID)
	if err != nil {
		return nil, fmt.Errorf("get voter: %w", err)
	}
	return &domain.VoteDetail{Vote: *v, Voter: voter}, nil
}
