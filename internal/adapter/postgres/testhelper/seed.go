package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and a dummy password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth",
		FirstName:    "Test",
		LastName:     "User " + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTrip creates a trip led by leaderID and records the leader and every
// collaborator in trip_members, in order. Returns the trip.
func SeedTrip(t *testing.T, pool *pgxpool.Pool, leaderID uuid.UUID, collaborators ...uuid.UUID) domain.Trip {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	trip := domain.Trip{
		ID:        uuid.New(),
		Name:      "Trip " + uniqueSuffix(),
		LeaderID:  leaderID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO trips (id, name, leader_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		trip.ID, trip.Name, trip.LeaderID, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrip insert trip: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO trip_members (trip_id, user_id, role) VALUES ($1, $2, 'leader')`,
		trip.ID, leaderID,
	); err != nil {
		t.Fatalf("testhelper: SeedTrip insert leader: %v", err)
	}

	for _, id := range collaborators {
		if _, err := pool.Exec(ctx,
			`INSERT INTO trip_members (trip_id, user_id, role) VALUES ($1, $2, 'collaborator')`,
			trip.ID, id,
		); err != nil {
			t.Fatalf("testhelper: SeedTrip insert collaborator: %v", err)
		}
	}

	return trip
}

// SeedItem creates an itinerary item of type "other" on tripID without votes.
func SeedItem(t *testing.T, pool *pgxpool.Pool, tripID uuid.UUID, name string) domain.Item {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:        uuid.New(),
		TripID:    tripID,
		Type:      domain.ItemTypeOther,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO itinerary_items (id, trip_id, type, name, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4,
		         (SELECT COALESCE(MAX(position), 0) + 1 FROM itinerary_items WHERE trip_id = $2),
		         $5, $6)
		 RETURNING position`,
		item.ID, item.TripID, string(item.Type), item.Name, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.Position)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// CountVotes returns the number of votes on an item.
func CountVotes(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM votes WHERE item_id = $1`, itemID,
	).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountVotes: %v", err)
	}
	return n
}
