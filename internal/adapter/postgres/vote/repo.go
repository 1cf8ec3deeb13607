// Package vote implements the Vote repository using PostgreSQL.
// Every insert is keyed by (item_id, user_id) and skips existing pairs, so
// fan-out can be repeated or run concurrently without creating duplicates.
package vote

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "item_id", "user_id", "status", "created_at", "updated_at"}

type voteRow struct {
	ID        uuid.UUID `db:"id"`
	ItemID    uuid.UUID `db:"item_id"`
	UserID    uuid.UUID `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Raw SQL for fan-out and cleanup
// ---------------------------------------------------------------------------

const insertMissingSQL = `
INSERT INTO votes (item_id, user_id, status)
SELECT i.item_id, u.user_id, ''
FROM unnest($1::uuid[]) AS i(item_id)
CROSS JOIN unnest($2::uuid[]) AS u(user_id)
ON CONFLICT (item_id, user_id) DO NOTHING`

const insertForMemberSQL = `
INSERT INTO votes (item_id, user_id, status)
SELECT i.id, $2::uuid, ''
FROM itinerary_items i
WHERE i.trip_id = $1::uuid
ON CONFLICT (item_id, user_id) DO NOTHING`

const insertForTripSQL = `
INSERT INTO votes (item_id, user_id, status)
SELECT i.id, m.user_id, ''
FROM itinerary_items i
JOIN trip_members m ON m.trip_id = i.trip_id
WHERE i.trip_id = $1::uuid
ON CONFLICT (item_id, user_id) DO NOTHING`

const deleteByMemberSQL = `
DELETE FROM votes v
USING itinerary_items i
WHERE v.item_id = i.id
  AND i.trip_id = $1::uuid
  AND v.user_id = $2::uuid`

const deleteNonMembersSQL = `
DELETE FROM votes v
USING itinerary_items i
WHERE v.item_id = i.id
  AND i.trip_id = $1::uuid
  AND NOT EXISTS (
      SELECT 1 FROM trip_members m
      WHERE m.trip_id = i.trip_id AND m.user_id = v.user_id
  )`

// Votes follow the membership ledger order: leader first, then join order.
// Votes of users that already left sort last.
const voteOrder = "(m.role = 'leader') DESC NULLS LAST, m.seq NULLS LAST, v.created_at, v.id"

// ---------------------------------------------------------------------------
// Fan-out
// ---------------------------------------------------------------------------

// InsertMissing creates one pending vote for every (item, user) pair in
// itemIDs × userIDs that does not have one yet. Returns the number created.
func (r *Repo) InsertMissing(ctx context.Context, itemIDs, userIDs []uuid.UUID) (int, error) {
	if len(itemIDs) == 0 || len(userIDs) == 0 {
		return 0, nil
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertMissingSQL, itemIDs, userIDs)
	if err != nil {
		return 0, postgres.MapError(err, "vote", itemIDs[0])
	}

	return int(tag.RowsAffected()), nil
}

// InsertForMember creates a pending vote for userID on every item of tripID
// that the user has not voted on yet. Returns the number created.
func (r *Repo) InsertForMember(ctx context.Context, tripID, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertForMemberSQL, tripID, userID)
	if err != nil {
		return 0, postgres.MapError(err, "vote", userID)
	}

	return int(tag.RowsAffected()), nil
}

// InsertForTrip creates every missing vote of tripID against its current
// membership. Returns the number created.
func (r *Repo) InsertForTrip(ctx context.Context, tripID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertForTripSQL, tripID)
	if err != nil {
		return 0, postgres.MapError(err, "vote", tripID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Cleanup
// ---------------------------------------------------------------------------

// DeleteByItem removes every vote on an item. Returns the number removed.
func (r *Repo) DeleteByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.Delete("votes").Where(sq.Eq{"item_id": itemID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete votes by item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "vote", itemID)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteByMember removes userID's votes on every item of tripID.
// Returns the number removed.
func (r *Repo) DeleteByMember(ctx context.Context, tripID, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByMemberSQL, tripID, userID)
	if err != nil {
		return 0, postgres.MapError(err, "vote", userID)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteNonMembers removes votes on items of tripID whose user is no longer a
// member of the trip. Returns the number removed.
func (r *Repo) DeleteNonMembers(ctx context.Context, tripID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteNonMembersSQL, tripID)
	if err != nil {
		return 0, postgres.MapError(err, "vote", tripID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Single-vote operations
// ---------------------------------------------------------------------------

// GetByID returns a vote by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	query, args, err := postgres.Builder.Select(columns...).From("votes").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get vote: %w", err)
	}

	var row voteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "vote", id)
	}

	v := toDomain(row)
	return &v, nil
}

// UpdateStatus sets the status of a vote and returns the updated row.
// item_id and user_id are never touched.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Vote, error) {
	query, args, err := postgres.Builder.
		Update("votes").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update vote: %w", err)
	}

	var row voteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "vote", id)
	}

	v := toDomain(row)
	return &v, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByItem returns the live vote set of an item in membership order.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Vote, error) {
	query, args, err := selectOrdered().Where(sq.Eq{"v.item_id": itemID}).OrderBy(voteOrder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list votes: %w", err)
	}

	var rows []voteRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	return toDomainSlice(rows), nil
}

// ListByItemIDs returns the votes of several items (batch for DataLoader).
// Results carry ItemID for grouping by the caller.
func (r *Repo) ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]domain.Vote, error) {
	if len(itemIDs) == 0 {
		return []domain.Vote{}, nil
	}

	query, args, err := selectOrdered().Where(sq.Eq{"v.item_id": itemIDs}).OrderBy("v.item_id", voteOrder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list votes by item ids: %w", err)
	}

	var rows []voteRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list votes by item ids: %w", err)
	}

	return toDomainSlice(rows), nil
}

// selectOrdered joins votes to the membership ledger so results can be
// ordered like the trip's members.
func selectOrdered() sq.SelectBuilder {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "v." + c
	}
	return postgres.Builder.
		Select(cols...).
		From("votes v").
		Join("itinerary_items i ON i.id = v.item_id").
		LeftJoin("trip_members m ON m.trip_id = i.trip_id AND m.user_id = v.user_id")
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(row voteRow) domain.Vote {
	return domain.Vote{
		ID:        row.ID,
		ItemID:    row.ItemID,
		UserID:    row.UserID,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainSlice(rows []voteRow) []domain.Vote {
	votes := make([]domain.Vote, len(rows))
	for i, row := range rows {
		votes[i] = toDomain(row)
	}
	return votes
}
