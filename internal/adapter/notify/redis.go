package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/config"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// JobKindInvite is the kind of job the mail sender receives for invitations.
const JobKindInvite = "trip_invite"

// redisClient is the subset of *redis.Client the outbox needs.
type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// InviteJob is the JSON document pushed onto the outbox list.
type InviteJob struct {
	Kind      string     `json:"kind"`
	TripID    uuid.UUID  `json:"trip_id"`
	TripName  string     `json:"trip_name"`
	UserID    uuid.UUID  `json:"user_id"`
	InvitedBy *uuid.UUID `json:"invited_by,omitempty"`
	QueuedAt  time.Time  `json:"queued_at"`
}

// RedisNotifier queues invitations on a Redis list, at most once per
// (trip, user) pair within the dedupe TTL.
type RedisNotifier struct {
	client    redisClient
	outboxKey string
	dedupeTTL time.Duration
	log       *slog.Logger
	now       func() time.Time
}

// NewRedisNotifier creates an outbox notifier on top of a Redis client.
func NewRedisNotifier(client redisClient, cfg config.RedisConfig, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:    client,
		outboxKey: cfg.OutboxKey,
		dedupeTTL: cfg.InviteDedupeTTL,
		log:       logger.With("notifier", "redis"),
		now:       time.Now,
	}
}

// InviteKey is the dedupe key for an invitation.
func InviteKey(tripID, userID uuid.UUID) string {
	return "invite:" + tripID.String() + ":" + userID.String()
}

// Ping checks the Redis connection.
func (n *RedisNotifier) Ping(ctx context.Context) error {
	return n.client.Ping(ctx).Err()
}

// NotifyInvite queues an invitation job. A repeated invitation inside the
// dedupe window is dropped silently.
func (n *RedisNotifier) NotifyInvite(ctx context.Context, inv domain.Invitation) error {
	key := InviteKey(inv.TripID, inv.UserID)

	fresh, err := n.client.SetNX(ctx, key, n.now().UTC().Unix(), n.dedupeTTL).Result()
	if err != nil {
		return fmt.Errorf("invite dedupe: %w", err)
	}
	if !fresh {
		n.log.DebugContext(ctx, "duplicate invitation dropped", slog.String("key", key))
		return nil
	}

	payload, err := json.Marshal(InviteJob{
		Kind:      JobKindInvite,
		TripID:    inv.TripID,
		TripName:  inv.TripName,
		UserID:    inv.UserID,
		InvitedBy: inv.InvitedBy,
		QueuedAt:  n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal invite job: %w", err)
	}

	if err := n.client.RPush(ctx, n.outboxKey, payload).Err(); err != nil {
		// Release the dedupe key so a later retry can queue the job.
		if delErr := n.client.Del(ctx, key).Err(); delErr != nil {
			n.log.WarnContext(ctx, "release invite dedupe key", slog.String("key", key), slog.String("error", delErr.Error()))
		}
		return fmt.Errorf("push invite job: %w", err)
	}

	n.log.InfoContext(ctx, "invitation queued",
		slog.String("trip_id", inv.TripID.String()),
		slog.String("user_id", inv.UserID.String()),
	)
	return nil
}
