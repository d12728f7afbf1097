// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xhamera1/Hotel-app/internal/config"
	"github.com/xhamera1/Hotel-app/internal/snapshot"
	"go.uber.org/zap"
)

// Repository stores one JSON record per room plus an ordered list of room
// numbers
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig, logger *zap.Logger) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.SnapshotTTL,
		logger:    logger,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// roomsKey returns the key of the ordered room number list
func (r *Repository) roomsKey() string {
	return r.keyPrefix + "rooms"
}

// roomKey returns the key holding a single room record
func (r *Repository) roomKey(number string) string {
	return fmt.Sprintf("%srooms:%s", r.keyPrefix, number)
}

// LoadRecords reads the room list and fetches every record in one MGET.
// Rooms whose record has expired or cannot be decoded are logged and left
// out.
func (r *Repository) LoadRecords(ctx context.Context) ([]snapshot.Record, error) {
	numbers, err := r.client.LRange(ctx, r.roomsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	if len(numbers) == 0 {
		return nil, snapshot.ErrNotFound
	}

	keys := make([]string, len(numbers))
	for i, number := range numbers {
		keys[i] = r.roomKey(number)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room data: %w", err)
	}

	records := make([]snapshot.Record, 0, len(values))
	for i, v := range values {
		if v == nil {
			r.logger.Warn("Skipping room without stored record",
				zap.String("room", numbers[i]), zap.String("reason", "record missing or expired"))
			continue
		}

		strData, ok := v.(string)
		if !ok {
			r.logger.Warn("Skipping room with unexpected record type",
				zap.String("room", numbers[i]), zap.String("reason", fmt.Sprintf("%T", v)))
			continue
		}

		var record snapshot.Record
		if err := json.Unmarshal([]byte(strData), &record); err != nil {
			r.logger.Warn("Skipping room with corrupt record",
				zap.String("room", numbers[i]), zap.String("reason", err.Error()))
			continue
		}
		record.Line = i + 1

		records = append(records, record)
	}

	return records, nil
}

// SaveRecords replaces the stored snapshot in a single transaction. Records
// of rooms that are no longer present are deleted.
func (r *Repository) SaveRecords(ctx context.Context, records []snapshot.Record) error {
	previous, err := r.client.LRange(ctx, r.roomsKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to list rooms: %w", err)
	}

	pipe := r.client.TxPipeline()

	stale := make([]string, 0, len(previous)+1)
	stale = append(stale, r.roomsKey())
	for _, number := range previous {
		stale = append(stale, r.roomKey(number))
	}
	pipe.Del(ctx, stale...)

	numbers := make([]interface{}, 0, len(records))
	for _, record := range records {
		record.Line = 0
		data, err := json.Marshal(&record)
		if err != nil {
			return fmt.Errorf("failed to marshal room %s: %w", record.RoomNumber, err)
		}
		pipe.Set(ctx, r.roomKey(record.RoomNumber), data, r.ttl)
		numbers = append(numbers, record.RoomNumber)
	}

	if len(numbers) > 0 {
		pipe.RPush(ctx, r.roomsKey(), numbers...)
		if r.ttl > 0 {
			pipe.Expire(ctx, r.roomsKey(), r.ttl)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
