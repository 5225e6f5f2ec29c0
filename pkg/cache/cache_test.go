package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Fatal("empty cache should miss")
	}
	_ = c.Set(ctx, "a", []byte("one"), 0)
	data, hit, err := c.Get(ctx, "a")
	if err != nil || !hit || string(data) != "one" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	_ = c.Set(ctx, "a", []byte("two"), 0)
	if data, _, _ := c.Get(ctx, "a"); string(data) != "two" {
		t.Errorf("overwrite: got %q", data)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	_ = c.Delete(ctx, "a")
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("deleted key should miss")
	}
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	_ = c.Set(ctx, "a", []byte("a"), 0)
	_ = c.Set(ctx, "b", []byte("b"), 0)
	_, _, _ = c.Get(ctx, "a") // b is now the oldest
	_ = c.Set(ctx, "c", []byte("c"), 0)

	for key, want := range map[string]bool{"a": true, "b": false, "c": true} {
		if _, hit, _ := c.Get(ctx, key); hit != want {
			t.Errorf("Get(%q) hit = %v, want %v", key, hit, want)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "short", []byte("x"), time.Minute)
	_ = c.Set(ctx, "forever", []byte("y"), 0)

	now = now.Add(30 * time.Second)
	if _, hit, _ := c.Get(ctx, "short"); !hit {
		t.Error("entry should live until its ttl")
	}

	now = now.Add(time.Minute)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero ttl should never expire")
	}
	if c.Len() != 1 {
		t.Errorf("expired entry should be evicted on read, Len = %d", c.Len())
	}
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(16)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i+j)%32)
				_ = c.Set(ctx, key, []byte(key), 0)
				_, _, _ = c.Get(ctx, key)
			}
		}()
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len = %d exceeds limit", c.Len())
	}
}

func TestArtifactKey(t *testing.T) {
	base := ArtifactKeyOpts{Rows: 10, Columns: 10, Seed: 42, Mode: "bfs", Format: "svg", Size: 500}
	k1 := ArtifactKey(base)
	if k1 != ArtifactKey(base) {
		t.Error("ArtifactKey should be deterministic")
	}
	if !strings.HasPrefix(k1, "artifact:") {
		t.Errorf("ArtifactKey = %q, want artifact: prefix", k1)
	}

	variants := []ArtifactKeyOpts{base, base, base, base}
	variants[0].Seed = 43
	variants[1].Mode = "dfs"
	variants[2].Format = "json"
	variants[3].Visualize = true
	for i, v := range variants {
		if ArtifactKey(v) == k1 {
			t.Errorf("variant %d should produce a different key", i)
		}
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}
