// Package trip implements the Trip repository using PostgreSQL.
package trip

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

// Repo provides trip persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new trip repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "name", "start_date", "end_date", "location", "leader_id", "created_at", "updated_at"}

type tripRow struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	Location  *string    `db:"location"`
	LeaderID  uuid.UUID  `db:"leader_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a trip by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	query, args, err := postgres.Builder.Select(columns...).From("trips").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get trip: %w", err)
	}

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", id)
	}

	t := toDomain(row)
	return &t, nil
}

// List returns trips matching filter, oldest first.
// A zero filter returns every trip; an empty non-nil IDs slice returns none.
func (r *Repo) List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []domain.Trip{}, nil
	}

	b := postgres.Builder.Select(columns...).From("trips")
	if filter.IDs != nil {
		b = b.Where(sq.Eq{"id": filter.IDs})
	}
	if filter.MemberID != nil {
		b = b.Where(sq.Expr("id IN (SELECT trip_id FROM trip_members WHERE user_id = ?)", *filter.MemberID))
	}

	query, args, err := b.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list trips: %w", err)
	}

	var rows []tripRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	trips := make([]domain.Trip, len(rows))
	for i, row := range rows {
		trips[i] = toDomain(row)
	}
	return trips, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new trip and returns the persisted row.
// Returns domain.ErrNotFound if the leader does not exist.
func (r *Repo) Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert("trips").
		Columns("id", "name", "start_date", "end_date", "location", "leader_id").
		Values(id, t.Name, t.StartDate, t.EndDate, t.Location, t.LeaderID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create trip: %w", err)
	}

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", id)
	}

	created := toDomain(row)
	return &created, nil
}

// Update applies params to the trip and returns the updated row.
// An empty Location and the Clear flags null their columns. An empty params
// value only reads.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TripUpdateParams) (*domain.Trip, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	switch {
	case params.ClearStartDate:
		set["start_date"] = nil
	case params.StartDate != nil:
		set["start_date"] = *params.StartDate
	}
	switch {
	case params.ClearEndDate:
		set["end_date"] = nil
	case params.EndDate != nil:
		set["end_date"] = *params.EndDate
	}
	if params.Location != nil {
		if *params.Location == "" {
			set["location"] = nil
		} else {
			set["location"] = *params.Location
		}
	}

	query, args, err := postgres.Builder.
		Update("trips").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update trip: %w", err)
	}

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// Delete removes a trip. Members, items and votes go with it through
// ON DELETE CASCADE. Returns domain.ErrNotFound if the trip does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.Delete("trips").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete trip: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "trip", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(row tripRow) domain.Trip {
	return domain.Trip{
		ID:        row.ID,
		Name:      row.Name,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		Location:  row.Location,
		LeaderID:  row.LeaderID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
