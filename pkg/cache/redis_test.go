package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemhub/pkg/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{RedisURL: url}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	t.Run("Ping", func(t *testing.T) {
		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("ItemCache_RoundTrip", func(t *testing.T) {
		c := NewItemCache(rc)
		created := time.Now().UTC().Truncate(time.Millisecond)
		item := &CachedItem{
			ID:        uuid.New(),
			Name:      "Widget",
			Category:  "Hardware",
			CreatedAt: created,
			UpdatedAt: created.Add(time.Hour),
		}
		if err := c.Set(context.Background(), item); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := c.Get(context.Background(), item.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != item.Name || got.Category != item.Category {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, item)
		}
		if !got.CreatedAt.Equal(item.CreatedAt) || !got.UpdatedAt.Equal(item.UpdatedAt) {
			t.Fatalf("timestamp round trip mismatch: got %v/%v, want %v/%v",
				got.CreatedAt, got.UpdatedAt, item.CreatedAt, item.UpdatedAt)
		}
		if err := c.Delete(context.Background(), item.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
	})
}
