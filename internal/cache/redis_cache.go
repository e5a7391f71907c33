package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

const (
	campaignsKey   = "brandportal:campaigns"
	creatorPoolKey = "brandportal:creators:pool"
)

// redisCache is the shared Redis cache tier. Values are stored as JSON.
type redisCache struct {
	client *redis.Client
	config Config
}

// newRedisCache creates a new Redis cache client.
func newRedisCache(config Config) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisCache{
		client: client,
		config: config,
	}, nil
}

func (rc *redisCache) getCampaigns(ctx context.Context) ([]models.Campaign, error) {
	data, err := rc.client.Get(ctx, campaignsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("Redis get error: %w", err)
	}

	var campaigns []models.Campaign
	if err := json.Unmarshal([]byte(data), &campaigns); err != nil {
		return nil, fmt.Errorf("JSON unmarshal error: %w", err)
	}
	return campaigns, nil
}

func (rc *redisCache) setCampaigns(ctx context.Context, campaigns []models.Campaign, ttl time.Duration) error {
	data, err := json.Marshal(campaigns)
	if err != nil {
		return fmt.Errorf("JSON marshal error: %w", err)
	}
	if err := rc.client.Set(ctx, campaignsKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("Redis set error: %w", err)
	}
	return nil
}

func (rc *redisCache) getCreatorPool(ctx context.Context) ([]models.DiscoverableCreator, error) {
	data, err := rc.client.Get(ctx, creatorPoolKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("Redis get error: %w", err)
	}

	var creators []models.DiscoverableCreator
	if err := json.Unmarshal([]byte(data), &creators); err != nil {
		return nil, fmt.Errorf("JSON unmarshal error: %w", err)
	}
	return creators, nil
}

func (rc *redisCache) setCreatorPool(ctx context.Context, creators []models.DiscoverableCreator, ttl time.Duration) error {
	data, err := json.Marshal(creators)
	if err != nil {
		return fmt.Errorf("JSON marshal error: %w", err)
	}
	if err := rc.client.Set(ctx, creatorPoolKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("Redis set error: %w", err)
	}
	return nil
}

func (rc *redisCache) clear(ctx context.Context) error {
	if err := rc.client.Del(ctx, campaignsKey, creatorPoolKey).Err(); err != nil {
		return fmt.Errorf("Redis delete error: %w", err)
	}
	return nil
}
