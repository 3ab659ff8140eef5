package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"petStylizer/internal/config"
	"petStylizer/internal/models"
)

const keyPrefix = "stylize:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis. A positive urlLifetime caps the entry TTL so that
// cached results never outlive the hosted images they point to.
func New(cfg *config.Cache, urlLifetime time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if urlLifetime > 0 && (ttl <= 0 || urlLifetime < ttl) {
		ttl = urlLifetime
	}

	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Key identifies a stylization by the uploaded bytes and the prompts used.
func Key(image []byte, prompts []string) string {
	h := sha256.New()
	h.Write(image)
	for _, p := range prompts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}

	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the stored result for image and prompts, or nil, nil on a miss.
func (c *Cache) Get(ctx context.Context, image []byte, prompts []string) ([]models.Variation, error) {
	const op = "cache.redis.Get"

	data, err := c.client.Get(ctx, Key(image, prompts)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var images []models.Variation
	if err = json.Unmarshal(data, &images); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

func (c *Cache) Set(ctx context.Context, image []byte, prompts []string, images []models.Variation) error {
	const op = "cache.redis.Set"

	data, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = c.client.Set(ctx, Key(image, prompts), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
