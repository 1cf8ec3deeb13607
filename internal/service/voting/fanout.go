package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// FanOut creates one pending vote on itemID for every user in members that
// has none yet. Duplicate and nil ids are ignored. Safe to repeat: a second
// call with the same members creates nothing. Returns the number of votes
// created.
func (s *Service) FanOut(ctx context.Context, itemID uuid.UUID, members []uuid.UUID) (int, error) {
	if itemID == uuid.Nil {
		return 0, domain.NewValidationError("item_id", "required")
	}

	userIDs := dedupe(members)
	if len(userIDs) == 0 {
		return 0, nil
	}

	created, err := s.votes.InsertMissing(ctx, []uuid.UUID{itemID}, userIDs)
	if err != nil {
		return 0, fmt.Errorf("fan out votes: %w", err)
	}

	if created > 0 {
		s.log.InfoContext(ctx, "votes fanned out",
			slog.String("item_id", itemID.String()),
			slog.Int("members", len(userIDs)),
			slog.Int("created", created),
		)
	}

	return created, nil
}

// FanOutMember creates a pending vote for userID on every item of tripID the
// user has not voted on yet. Used when a collaborator joins after items exist.
func (s *Service) FanOutMember(ctx context.Context, tripID, userID uuid.UUID) (int, error) {
	created, err := s.votes.InsertForMember(ctx, tripID, userID)
	if err != nil {
		return 0, fmt.Errorf("fan out member votes: %w", err)
	}

	if created > 0 {
		s.log.InfoContext(ctx, "member votes fanned out",
			slog.String("trip_id", tripID.String()),
			slog.String("user_id", userID.String()),
			slog.Int("created", created),
		)
	}

	return created, nil
}

// RemoveMemberVotes deletes userID's votes on every item of tripID.
func (s *Service) RemoveMemberVotes(ctx context.Context, tripID, userID uuid.UUID) (int, error) {
	removed, err := s.votes.DeleteByMember(ctx, tripID, userID)
	if err != nil {
		return 0, fmt.Errorf("remove member votes: %w", err)
	}
	return removed, nil
}

// ClearItem deletes every vote on an item. Callers run it in the same
// transaction as the item delete.
func (s *Service) ClearItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	removed, err := s.votes.DeleteByItem(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("clear item votes: %w", err)
	}
	return removed, nil
}

// dedupe drops nil and repeated ids, keeping first occurrence order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
