package trip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// UpdateTrip applies a partial update. A collaborator set replaces the
// current membership: new members get votes on every item, dropped members
// lose theirs. The leader always stays.
func (s *Service) UpdateTrip(ctx context.Context, input UpdateTripInput) (*domain.TripDetail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.trips.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	if err := checkDateRange(old, input); err != nil {
		return nil, err
	}

	var desired []uuid.UUID
	if input.CollaboratorIDs != nil {
		users, err := s.members.ResolveMembers(ctx, old.LeaderID, *input.CollaboratorIDs)
		if err != nil {
			return nil, err
		}
		desired = make([]uuid.UUID, len(users))
		for i, u := range users {
			desired[i] = u.ID
		}
	}

	var (
		updated        *domain.Trip
		added, removed []uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.trips.Update(txCtx, input.ID, input.params())
		if err != nil {
			return fmt.Errorf("update trip: %w", err)
		}

		if desired != nil {
			current, err := s.members.ListMembers(txCtx, input.ID)
			if err != nil {
				return err
			}

			added, removed = diffMembers(domain.MemberIDs(current), desired, updated.LeaderID)

			for _, userID := range added {
				if _, err := s.members.Join(txCtx, input.ID, userID); err != nil {
					return err
				}
			}
			for _, userID := range removed {
				if err := s.members.Leave(txCtx, input.ID, userID); err != nil {
					return err
				}
			}
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeTrip,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    tripChanges(old, updated, added, removed),
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.members.Announce(ctx, *updated, added, removed)

	s.log.InfoContext(ctx, "trip updated",
		slog.String("trip_id", updated.ID.String()),
		slog.Int("members_added", len(added)),
		slog.Int("members_removed", len(removed)),
	)

	return s.GetTrip(ctx, updated.ID)
}

// checkDateRange validates the date range that results from applying the
// patch to the stored trip.
func checkDateRange(old *domain.Trip, input UpdateTripInput) error {
	p := input.params()
	start, end := old.StartDate, old.EndDate
	switch {
	case p.ClearStartDate:
		start = nil
	case p.StartDate != nil:
		start = p.StartDate
	}
	switch {
	case p.ClearEndDate:
		end = nil
	case p.EndDate != nil:
		end = p.EndDate
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.NewValidationError("end_date", "must not be before start_date")
	}
	return nil
}

// diffMembers returns the ids in desired but not in current, and the ids in
// current but not in desired. The leader is never removed.
func diffMembers(current, desired []uuid.UUID, leaderID uuid.UUID) (added, removed []uuid.UUID) {
	inCurrent := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		inCurrent[id] = struct{}{}
	}
	inDesired := make(map[uuid.UUID]struct{}, len(desired))
	for _, id := range desired {
		inDesired[id] = struct{}{}
		if _, ok := inCurrent[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range current {
		if id == leaderID {
			continue
		}
		if _, ok := inDesired[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}

func tripChanges(old, updated *domain.Trip, added, removed []uuid.UUID) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if !sameDate(old.StartDate, updated.StartDate) {
		changes["start_date"] = map[string]any{"old": old.StartDate, "new": updated.StartDate}
	}
	if !sameDate(old.EndDate, updated.EndDate) {
		changes["end_date"] = map[string]any{"old": old.EndDate, "new": updated.EndDate}
	}
	if deref(old.Location) != deref(updated.Location) {
		changes["location"] = map[string]any{"old": deref(old.Location), "new": deref(updated.Location)}
	}
	if len(added) > 0 {
		changes["members_added"] = added
	}
	if len(removed) > 0 {
		changes["members_removed"] = removed
	}
	return changes
}
