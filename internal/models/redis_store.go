package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultReviewsKey = "reviews"

// RedisStore persists the full review collection as a single JSON value under
// one key, mirroring how the browser build of this product kept the set in
// localStorage.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultReviewsKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) ([]Review, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews from redis: %w", err)
	}

	var reviews []Review
	if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
		// Corrupt payload degrades to an empty collection; the next save
		// overwrites it with well-formed JSON.
		return nil, nil
	}
	return reviews, nil
}

func (r *RedisStore) Save(ctx context.Context, reviews []Review) error {
	if reviews == nil {
		reviews = []Review{}
	}
	data, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("failed to encode reviews: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write reviews to redis: %w", err)
	}
	return nil
}
