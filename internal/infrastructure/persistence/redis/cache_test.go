package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "k1", map[string]string{"a": "b"}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(val, &decoded); err != nil {
		t.Fatalf("unmarshal cached value: %v", err)
	}
	if decoded["a"] != "b" {
		t.Fatalf("cached value = %v, want a=b", decoded)
	}
}

func TestCacheGetMiss(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)

	_, err := cache.Get(context.Background(), "missing")
	if !IsNil(err) {
		t.Fatalf("Get(missing) err = %v, want redis.Nil", err)
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	calls := 0
	loader := func() (interface{}, error) {
		calls++
		return []string{"x", "y"}, nil
	}

	first, err := cache.GetOrLoad(ctx, "list", time.Minute, loader)
	if err != nil {
		t.Fatalf("GetOrLoad: %v", err)
	}
	second, err := cache.GetOrLoad(ctx, "list", time.Minute, loader)
	if err != nil {
		t.Fatalf("GetOrLoad: %v", err)
	}

	if calls != 1 {
		t.Fatalf("loader calls = %d, want 1 (second read from cache)", calls)
	}
	if string(first) != string(second) {
		t.Fatalf("cached payload changed: %q vs %q", first, second)
	}
}

func TestCacheGetOrLoadSafePropagatesLoaderError(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)

	wantErr := errors.New("upstream down")
	_, err := cache.GetOrLoadSafe(context.Background(), "broken", time.Minute, func() (interface{}, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetOrLoadSafe err = %v, want loader error", err)
	}
}

func TestCacheInvalidateImageSearch(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "pexels:search:abc", []string{"url"}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cache.Set(ctx, "other:key", "keep", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := cache.InvalidateImageSearch(ctx); err != nil {
		t.Fatalf("InvalidateImageSearch: %v", err)
	}

	if _, err := cache.Get(ctx, "pexels:search:abc"); !IsNil(err) {
		t.Fatalf("search cache not invalidated, err = %v", err)
	}
	if _, err := cache.Get(ctx, "other:key"); err != nil {
		t.Fatalf("unrelated key was invalidated: %v", err)
	}
}
