package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const profileTTL = 24 * time.Hour

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache() *RedisCache {
	addr := fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	return &RedisCache{client: client}
}

func profileKey(userID uint) string {
	return fmt.Sprintf("profile:%d", userID)
}

func (r *RedisCache) Get(ctx context.Context, userID uint) (*Profile, error) {
	data, err := r.client.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RedisCache) Set(ctx context.Context, userID uint, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKey(userID), data, profileTTL).Err()
}

func (r *RedisCache) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, profileKey(userID)).Err()
}
