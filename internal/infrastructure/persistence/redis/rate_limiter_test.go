package redis

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildClientRateLimitKey("10.0.0.1", "/api/v1/interviews")

	allowed, err := limiter.Allow(ctx, key, 1, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if !allowed {
		t.Fatal("first request should be allowed")
	}

	allowed, err = limiter.Allow(ctx, key, 1, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if allowed {
		t.Fatal("second request should exceed limit 1")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildClientRateLimitKey("10.0.0.2", "/api/v1/interviews")

	if allowed, _ := limiter.Allow(ctx, key, 1, 50*time.Millisecond); !allowed {
		t.Fatal("first request should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, key, 1, 50*time.Millisecond); allowed {
		t.Fatal("second request should be blocked inside window")
	}

	// 窗口滑过之后旧请求被清除
	time.Sleep(60 * time.Millisecond)
	if allowed, err := limiter.Allow(ctx, key, 1, 50*time.Millisecond); err != nil || !allowed {
		t.Fatalf("Allow after window = (%v, %v), want allowed", allowed, err)
	}
}

func TestRateLimiterRemaining(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildClientRateLimitKey("10.0.0.3", "/api/v1/cards")

	remaining, err := limiter.Remaining(ctx, key, 5, time.Minute)
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if remaining != 5 {
		t.Fatalf("Remaining = %d, want 5", remaining)
	}

	if _, err := limiter.Allow(ctx, key, 5, time.Minute); err != nil {
		t.Fatalf("Allow: %v", err)
	}
	remaining, err = limiter.Remaining(ctx, key, 5, time.Minute)
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if remaining != 4 {
		t.Fatalf("Remaining = %d, want 4", remaining)
	}
}

func TestRateLimiterReset(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildClientRateLimitKey("10.0.0.4", "/api/v1/cards")

	if allowed, _ := limiter.Allow(ctx, key, 1, time.Minute); !allowed {
		t.Fatal("first request should be allowed")
	}
	if err := limiter.Reset(ctx, key); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if allowed, _ := limiter.Allow(ctx, key, 1, time.Minute); !allowed {
		t.Fatal("request after reset should be allowed")
	}
}

func TestBuildClientRateLimitKey(t *testing.T) {
	got := BuildClientRateLimitKey("192.168.1.7", "/api/v1/interviews")
	want := "ratelimit:192.168.1.7:/api/v1/interviews"
	if got != want {
		t.Fatalf("BuildClientRateLimitKey = %q, want %q", got, want)
	}
}
