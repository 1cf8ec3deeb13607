// Package notify delivers trip invitations to the mail sender.
//
// The mail sender itself lives outside this service: invitations are pushed
// as JSON jobs onto a Redis list that the sender drains. Without Redis the
// invitations are only logged.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"github.com/heartmarshall/tripvote-backend/internal/config"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// Notifier sends an invitation to a newly added collaborator.
type Notifier interface {
	NotifyInvite(ctx context.Context, inv domain.Invitation) error
}

// Connect opens the Redis client for the outbox. It returns a nil client
// when no address is configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// New returns the Redis outbox notifier for a connected client and a
// log-only notifier for a nil one.
func New(client *redis.Client, cfg config.RedisConfig, logger *slog.Logger) Notifier {
	if client == nil {
		logger.Info("redis not configured, invitations are logged only")
		return NewLogNotifier(logger)
	}

	logger.Info("redis outbox enabled",
		slog.String("addr", cfg.Addr),
		slog.String("outbox_key", cfg.OutboxKey),
	)
	return NewRedisNotifier(client, cfg, logger)
}

// LogNotifier writes invitations to the log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.With("notifier", "log")}
}

// NotifyInvite logs the invitation. It never fails.
func (n *LogNotifier) NotifyInvite(ctx context.Context, inv domain.Invitation) error {
	attrs := []any{
		slog.String("trip_id", inv.TripID.String()),
		slog.String("trip_name", inv.TripName),
		slog.String("user_id", inv.UserID.String()),
	}
	if inv.InvitedBy != nil {
		attrs = append(attrs, slog.String("invited_by", inv.InvitedBy.String()))
	}
	n.log.InfoContext(ctx, "trip invitation", attrs...)
	return nil
}
