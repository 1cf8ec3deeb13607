// Command reconcile restores the one-vote-per-member invariant for a trip,
// or for every trip when no id is given. It is meant to run from cron after
// bursts of concurrent membership and itinerary edits.
//
// Usage:
//
//	reconcile [--trip=<uuid>]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/audit"
	itemrepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/item"
	triprepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/trip"
	userrepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/user"
	voterepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/tripvote-backend/internal/app"
	"github.com/heartmarshall/tripvote-backend/internal/config"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/voting"
)

// noEvents drops trip events; there are no live subscribers in this process.
type noEvents struct{}

func (noEvents) Publish(context.Context, domain.TripEvent) {}

func main() {
	tripFlag := flag.String("trip", "", "trip id to reconcile (default: all trips)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	trips := triprepo.New(pool)
	svc := voting.NewService(logger,
		voterepo.New(pool), itemrepo.New(pool), trips, userrepo.New(pool),
		audit.New(pool), postgres.NewTxManager(pool), noEvents{}, cfg.Voting,
	)

	var ids []uuid.UUID
	if *tripFlag != "" {
		id, err := uuid.Parse(*tripFlag)
		if err != nil {
			logger.Error("invalid trip id", slog.String("trip", *tripFlag))
			os.Exit(1)
		}
		ids = []uuid.UUID{id}
	} else {
		all, err := trips.List(ctx, domain.TripFilter{})
		if err != nil {
			logger.Error("list trips", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, t := range all {
			ids = append(ids, t.ID)
		}
	}

	var total voting.ReconcileResult
	failed := 0
	for _, id := range ids {
		res, err := svc.Reconcile(ctx, id)
		if err != nil {
			failed++
			logger.Error("reconcile failed",
				slog.String("trip_id", id.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		total.Created += res.Created
		total.Removed += res.Removed
	}

	logger.Info("reconcile completed",
		slog.Int("trips", len(ids)),
		slog.Int("failed", failed),
		slog.Int("created", total.Created),
		slog.Int("removed", total.Removed),
	)

	if failed > 0 {
		os.Exit(1)
	}
}
