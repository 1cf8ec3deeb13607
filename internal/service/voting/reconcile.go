package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ReconcileResult reports what a reconcile pass changed.
type ReconcileResult struct {
	Created int
	Removed int
}

// Reconcile brings every item of tripID back to exactly one vote per current
// member: missing votes are created and votes of users who left are deleted.
// Concurrent item creation and collaborator changes can each miss the other's
// uncommitted row; running Reconcile afterwards converges the vote sets.
func (s *Service) Reconcile(ctx context.Context, tripID uuid.UUID) (ReconcileResult, error) {
	var res ReconcileResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.trips.GetByID(txCtx, tripID); err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		created, err := s.votes.InsertForTrip(txCtx, tripID)
		if err != nil {
			return fmt.Errorf("insert missing votes: %w", err)
		}

		removed, err := s.votes.DeleteNonMembers(txCtx, tripID)
		if err != nil {
			return fmt.Errorf("delete stale votes: %w", err)
		}

		res = ReconcileResult{Created: created, Removed: removed}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	s.log.InfoContext(ctx, "trip votes reconciled",
		slog.String("trip_id", tripID.String()),
		slog.Int("created", res.Created),
		slog.Int("removed", res.Removed),
	)

	return res, nil
}
