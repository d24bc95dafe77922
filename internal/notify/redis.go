package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Redis publishes events as JSON on a pub/sub channel.
type Redis struct {
	rdb     *redis.Client
	channel string
	log     *slog.Logger
}

// NewRedis returns a publisher on channel. The caller owns rdb.
func NewRedis(rdb *redis.Client, channel string, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{rdb: rdb, channel: channel, log: logger.With("component", "notify.redis")}
}

func (r *Redis) Notify(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		r.log.Error("encode event failed", "kind", ev.Kind, "err", err)
		return
	}
	if err := r.rdb.Publish(ctx, r.channel, payload).Err(); err != nil {
		r.log.Warn("publish event failed", "channel", r.channel, "kind", ev.Kind, "err", err)
	}
}
