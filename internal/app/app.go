// Package app wires configuration, storage, services and transport into a
// runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripvote-backend/internal/adapter/notify"
	"github.com/heartmarshall/tripvote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/audit"
	itemrepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/item"
	memberrepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/membership"
	triprepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/trip"
	userrepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/user"
	voterepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/tripvote-backend/internal/auth"
	"github.com/heartmarshall/tripvote-backend/internal/config"
	"github.com/heartmarshall/tripvote-backend/internal/service/itinerary"
	"github.com/heartmarshall/tripvote-backend/internal/service/membership"
	"github.com/heartmarshall/tripvote-backend/internal/service/trip"
	"github.com/heartmarshall/tripvote-backend/internal/service/trip/dataloader"
	"github.com/heartmarshall/tripvote-backend/internal/service/user"
	"github.com/heartmarshall/tripvote-backend/internal/service/voting"
	"github.com/heartmarshall/tripvote-backend/internal/transport/middleware"
	"github.com/heartmarshall/tripvote-backend/internal/transport/realtime"
	"github.com/heartmarshall/tripvote-backend/internal/transport/rest"
)

// App owns every long-lived resource of the server.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	redis   *redis.Client
	hub     *realtime.Hub
	limiter *middleware.RateLimiter
	jwt     *auth.JWTManager
	handler http.Handler
	server  *http.Server

	closeOnce sync.Once
}

// New connects to PostgreSQL and (when configured) Redis, then builds the app.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := notify.Connect(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return Build(cfg, logger, pool, rdb), nil
}

// Build assembles repositories, services and HTTP handlers on top of open
// connections. rdb may be nil.
func Build(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *App {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	auditRepo := audit.New(pool)
	tripRepo := triprepo.New(pool)
	itemRepo := itemrepo.New(pool)
	voteRepo := voterepo.New(pool)
	memberRepo := memberrepo.New(pool)
	userRepo := userrepo.New(pool)

	// Collaborators.
	hub := realtime.NewHub(logger, tripRepo, cfg.CORS.AllowedOrigins)
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	notifier := notify.New(rdb, cfg.Redis, logger)

	// Services.
	votingService := voting.NewService(logger, voteRepo, itemRepo, tripRepo, userRepo, auditRepo, txm, hub, cfg.Voting)
	membershipService := membership.NewService(logger, memberRepo, tripRepo, userRepo, votingService, notifier, hub, auditRepo, txm)
	itineraryService := itinerary.NewService(logger, itemRepo, tripRepo, memberRepo, userRepo, votingService, hub, auditRepo, txm)
	tripService := trip.NewService(logger, tripRepo, membershipService, &dataloader.Repos{
		User:   userRepo,
		Member: memberRepo,
		Item:   itemRepo,
		Vote:   voteRepo,
	}, auditRepo, txm, cfg.Voting)
	userService := user.NewService(logger, userRepo, memberRepo, hasher, auditRepo, txm)

	// Transport.
	deps := []rest.Dependency{{Name: "database", Pinger: pool}}
	if rn, ok := notifier.(*notify.RedisNotifier); ok {
		deps = append(deps, rest.Dependency{Name: "redis", Pinger: rn})
	}

	mux := http.NewServeMux()
	rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), deps...),
		Trips:  rest.NewTripHandler(tripService, membershipService, votingService, logger),
		Items:  rest.NewItemHandler(itineraryService, logger),
		Votes:  rest.NewVoteHandler(votingService, logger),
		Users:  rest.NewUserHandler(userService, logger),
		Feed:   hub,
	}.Register(mux)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
		limiter.Limit(cfg.RateLimit.WritesPerMinute),
	)(mux)

	return &App{
		cfg:     cfg,
		log:     logger,
		pool:    pool,
		redis:   rdb,
		hub:     hub,
		limiter: limiter,
		jwt:     jwtMgr,
		handler: handler,
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// JWT returns the token manager used by the auth middleware.
func (a *App) JWT() *auth.JWTManager { return a.jwt }

// Serve runs the HTTP server until ctx is cancelled, then drains it within
// server.shutdown_timeout and releases every resource.
func (a *App) Serve(ctx context.Context) error {
	defer a.Close()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	// Websockets are hijacked and not tracked by Shutdown.
	a.hub.Close()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close releases the websocket hub, rate limiter, Redis client and pool.
// Safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.hub.Close()
		a.limiter.Stop()
		if a.redis != nil {
			if err := a.redis.Close(); err != nil {
				a.log.Warn("close redis", slog.String("error", err.Error()))
			}
		}
		a.pool.Close()
	})
}

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to storage and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return a.Serve(ctx)
}
