// Package membership implements the trip membership ledger using PostgreSQL.
// The trip_members join table is the only record of who belongs to which
// trip; both trip→users and user→trips reads go through it.
package membership

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// Repo provides membership persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new membership repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type memberRow struct {
	TripID    uuid.UUID `db:"trip_id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

var columns = []string{"trip_id", "user_id", "role", "created_at"}

// Leader first, then join order.
const memberOrder = "(role = 'leader') DESC, seq"

// ---------------------------------------------------------------------------
// Raw SQL for batch writes
// ---------------------------------------------------------------------------

const addManySQL = `
INSERT INTO trip_members (trip_id, user_id, role)
SELECT $1::uuid, u.user_id, CASE WHEN u.user_id = t.leader_id THEN 'leader' ELSE 'collaborator' END
FROM unnest($2::uuid[]) WITH ORDINALITY AS u(user_id, ord)
JOIN trips t ON t.id = $1::uuid
ORDER BY u.ord
ON CONFLICT (trip_id, user_id) DO NOTHING`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Add records userID as a member of tripID with the given role.
// Idempotent: returns false without error when the membership already exists.
// Returns domain.ErrNotFound when the trip or user does not exist.
func (r *Repo) Add(ctx context.Context, tripID, userID uuid.UUID, role domain.MemberRole) (bool, error) {
	query, args, err := postgres.Builder.
		Insert("trip_members").
		Columns("trip_id", "user_id", "role").
		Values(tripID, userID, role.String()).
		Suffix("ON CONFLICT (trip_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build add member: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "trip_member", userID)
	}

	return tag.RowsAffected() == 1, nil
}

// AddMany records every user in userIDs as a member of tripID. The trip's
// leader gets the leader role, everyone else collaborator. Existing
// memberships are skipped. Returns the number of rows inserted.
func (r *Repo) AddMany(ctx context.Context, tripID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, addManySQL, tripID, userIDs)
	if err != nil {
		return 0, postgres.MapError(err, "trip_member", tripID)
	}

	return int(tag.RowsAffected()), nil
}

// Remove deletes a membership.
// Returns domain.ErrNotFound if the user is not a member of the trip.
func (r *Repo) Remove(ctx context.Context, tripID, userID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("trip_members").
		Where(sq.Eq{"trip_id": tripID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove member: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "trip_member", userID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip_member %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByTrip returns the membership snapshot of a trip, leader first.
// Returns an empty slice (not nil) when the trip has no members.
func (r *Repo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("trip_members").
		Where(sq.Eq{"trip_id": tripID}).
		OrderBy(memberOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list members: %w", err)
	}

	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return toDomainSlice(rows), nil
}

// ListByTripIDs returns the members of several trips (batch for DataLoader).
// Results carry TripID for grouping by the caller.
func (r *Repo) ListByTripIDs(ctx context.Context, tripIDs []uuid.UUID) ([]domain.Member, error) {
	if len(tripIDs) == 0 {
		return []domain.Member{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("trip_members").
		Where(sq.Eq{"trip_id": tripIDs}).
		OrderBy("trip_id", memberOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list members by trip ids: %w", err)
	}

	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list members by trip ids: %w", err)
	}

	return toDomainSlice(rows), nil
}

// TripIDsByUser returns the ids of every trip userID belongs to, oldest
// membership first.
func (r *Repo) TripIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder.
		Select("trip_id").
		From("trip_members").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trip ids by user: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("trip ids by user: %w", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainSlice(rows []memberRow) []domain.Member {
	members := make([]domain.Member, len(rows))
	for i, row := range rows {
		members[i] = domain.Member{
			TripID:    row.TripID,
			UserID:    row.UserID,
			Role:      domain.MemberRole(row.Role),
			CreatedAt: row.CreatedAt,
		}
	}
	return members
}
