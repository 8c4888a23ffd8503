package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func Connect(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connected")
	return rdb, nil
}

// EventLog remembers webhook event ids that were already processed, so
// a redelivered event is acknowledged without reapplying side effects.
type EventLog struct {
	Redis *redis.Client
}

const eventKeyTTL = 24 * time.Hour

func NewEventLog(rdb *redis.Client) *EventLog {
	return &EventLog{Redis: rdb}
}

// Seen reports whether the event id was already recorded. When redis
// is unreachable it reports false and the event is processed again;
// the status overwrite tolerates that.
func (l *EventLog) Seen(ctx context.Context, eventID string) bool {
	n, err := l.Redis.Exists(ctx, eventKey(eventID)).Result()
	if err != nil {
		log.Printf("event dedup unavailable: %v", err)
		return false
	}
	return n > 0
}

// Mark records the event id after its side effects landed.
func (l *EventLog) Mark(ctx context.Context, eventID string) {
	if err := l.Redis.Set(ctx, eventKey(eventID), 1, eventKeyTTL).Err(); err != nil {
		log.Printf("failed to record event %s: %v", eventID, err)
	}
}

func eventKey(id string) string {
	return "webhook:event:" + id
}
