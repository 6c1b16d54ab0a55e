package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const historyKey = "imgdrop:history"

type Repository interface {
	Add(ctx context.Context, rec *Record) error
	Recent(ctx context.Context, limit int64) ([]*Record, error)
}

type repository struct {
	client *redis.Client
	limit  int64
	ttl    time.Duration
}

// NewRepository keeps at most limit records; the list expires ttl after the
// last write.
func NewRepository(client *redis.Client, limit int64, ttl time.Duration) Repository {
	return &repository{
		client: client,
		limit:  limit,
		ttl:    ttl,
	}
}

func (r *repository) Add(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode history record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, historyKey, data)
	if r.limit > 0 {
		pipe.LTrim(ctx, historyKey, 0, r.limit-1)
	}
	if r.ttl > 0 {
		pipe.Expire(ctx, historyKey, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store history record: %w", err)
	}
	return nil
}

func (r *repository) Recent(ctx context.Context, limit int64) ([]*Record, error) {
	if limit <= 0 {
		limit = r.limit
	}

	raw, err := r.client.LRange(ctx, historyKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	records := make([]*Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	return records, nil
}
