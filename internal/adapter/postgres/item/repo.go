// Package item implements the itinerary item repository using PostgreSQL.
package item

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// Repo provides itinerary item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new itinerary item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "trip_id", "type", "name", "confirmed", "price", "location", "website",
	"details", "position", "created_at", "updated_at",
}

const itemOrder = "position, created_at, id"

type itemRow struct {
	ID        uuid.UUID `db:"id"`
	TripID    uuid.UUID `db:"trip_id"`
	Type      string    `db:"type"`
	Name      string    `db:"name"`
	Confirmed bool      `db:"confirmed"`
	Price     *string   `db:"price"`
	Location  *string   `db:"location"`
	Website   *string   `db:"website"`
	Details   []byte    `db:"details"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query, args, err := postgres.Builder.Select(columns...).From("itinerary_items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary_item", id)
	}

	return toDomain(row)
}

// ListByTrip returns the items of a trip in itinerary order.
func (r *Repo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Item, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("itinerary_items").
		Where(sq.Eq{"trip_id": tripID}).
		OrderBy(itemOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return toDomainSlice(rows)
}

// ListByTripIDs returns the items of several trips (batch for DataLoader).
// Results carry TripID for grouping by the caller.
func (r *Repo) ListByTripIDs(ctx context.Context, tripIDs []uuid.UUID) ([]domain.Item, error) {
	if len(tripIDs) == 0 {
		return []domain.Item{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("itinerary_items").
		Where(sq.Eq{"trip_id": tripIDs}).
		OrderBy("trip_id", itemOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items by trip ids: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list items by trip ids: %w", err)
	}

	return toDomainSlice(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an item at the end of its trip's itinerary.
// Returns domain.ErrNotFound if the trip does not exist.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	id := it.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	details, err := json.Marshal(it.Details)
	if err != nil {
		return nil, fmt.Errorf("itinerary_item marshal details: %w", err)
	}

	nextPosition := sq.Expr("(SELECT COALESCE(MAX(position), 0) + 1 FROM itinerary_items WHERE trip_id = ?)", it.TripID)

	query, args, err := postgres.Builder.
		Insert("itinerary_items").
		Columns("id", "trip_id", "type", "name", "confirmed", "price", "location", "website", "details", "position").
		Values(id, it.TripID, it.Type.String(), it.Name, it.Confirmed, it.Price, it.Location, it.Website, details, nextPosition).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create item: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary_item", id)
	}

	return toDomain(row)
}

// Update applies params to the item and returns the updated row.
// Flight or Lodging replaces the stored details; the caller checks they match
// the item type. An empty params value only reads.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Confirmed != nil {
		set["confirmed"] = *params.Confirmed
	}
	if params.Price != nil {
		set["price"] = nullIfEmpty(*params.Price)
	}
	if params.Location != nil {
		set["location"] = nullIfEmpty(*params.Location)
	}
	if params.Website != nil {
		set["website"] = nullIfEmpty(*params.Website)
	}
	if params.Flight != nil || params.Lodging != nil {
		details, err := json.Marshal(domain.ItemDetails{Flight: params.Flight, Lodging: params.Lodging})
		if err != nil {
			return nil, fmt.Errorf("itinerary_item marshal details: %w", err)
		}
		set["details"] = details
	}

	query, args, err := postgres.Builder.
		Update("itinerary_items").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary_item", id)
	}

	return toDomain(row)
}

// Delete removes an item that belongs to tripID. Votes on the item go with it
// through ON DELETE CASCADE. Returns domain.ErrNotFound if the item does not
// exist or belongs to another trip.
func (r *Repo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("itinerary_items").
		Where(sq.Eq{"id": itemID, "trip_id": tripID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "itinerary_item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("itinerary_item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func toDomain(row itemRow) (*domain.Item, error) {
	it := &domain.Item{
		ID:        row.ID,
		TripID:    row.TripID,
		Type:      domain.ItemType(row.Type),
		Name:      row.Name,
		Confirmed: row.Confirmed,
		Price:     row.Price,
		Location:  row.Location,
		Website:   row.Website,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if len(row.Details) > 0 {
		if err := json.Unmarshal(row.Details, &it.Details); err != nil {
			return nil, fmt.Errorf("itinerary_item %s unmarshal details: %w", row.ID, err)
		}
	}

	return it, nil
}

func toDomainSlice(rows []itemRow) ([]domain.Item, error) {
	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		it, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		items[i] = *it
	}
	return items, nil
}
