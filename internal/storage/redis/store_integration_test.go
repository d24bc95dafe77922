package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/Spigel00/work-force-matchup/internal/storage"
)

// TestStoreIntegration exercises Set/Get/Delete against a live Redis.
func TestStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_STORAGE_INTEGRATION") != "true" {
		t.Skip("set RUN_STORAGE_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Fatal("REDIS_URL is required")
	}

	ctx := context.Background()
	rdb, err := NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("init client: %v", err)
	}
	defer rdb.Close()
	store := NewStore(rdb)

	key := storage.Namespaced(fmt.Sprintf("apitest_%d", time.Now().UnixNano()), storage.SnapshotKey)
	defer func() { _ = store.Delete(ctx, key) }()

	if _, err := store.Get(ctx, key); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get before Set = %v, want ErrNotFound", err)
	}
	if err := store.Set(ctx, key, []byte(`{"users":[]}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := `{"users":[],"jobs":[]}`
	if err := store.Set(ctx, key, []byte(want)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != want {
		t.Fatalf("Get = %s, want %s", got, want)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get after Delete = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete missing key: %v", err)
	}
	t.Logf("stored and removed %s", key)
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
