package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"card-studio-ai-api/internal/config"
	"card-studio-ai-api/internal/domain/entity"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port: %v", err)
	}

	client, err := NewClient(&config.RedisConfig{
		Host: mr.Host(),
		Port: port,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestInterviewSessionRepoRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewInterviewSessionRepo(client, time.Hour)
	ctx := context.Background()

	session := entity.NewInterviewSession("sess-1")
	session.Requirements.Occasion = "birthday party"
	session.MarkAsked("occasion")
	session.PendingQuestionID = "card_type"

	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.Requirements.Occasion != "birthday party" {
		t.Errorf("occasion = %q", got.Requirements.Occasion)
	}
	if !got.HasAsked("occasion") {
		t.Error("asked list not restored")
	}
	if got.PendingQuestionID != "card_type" {
		t.Errorf("pending question = %q", got.PendingQuestionID)
	}
}

func TestInterviewSessionRepoMissingReturnsNil(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewInterviewSessionRepo(client, time.Hour)

	got, err := repo.GetByID(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session, got %+v", got)
	}
}

func TestInterviewSessionRepoDelete(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewInterviewSessionRepo(client, time.Hour)
	ctx := context.Background()

	session := entity.NewInterviewSession("sess-2")
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "sess-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.GetByID(ctx, "sess-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("session should be gone after delete")
	}
}

func TestInterviewSessionRepoTTL(t *testing.T) {
	client, mr := newTestClient(t)
	repo := NewInterviewSessionRepo(client, time.Minute)
	ctx := context.Background()

	session := entity.NewInterviewSession("sess-ttl")
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := repo.GetByID(ctx, "sess-ttl")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("session should expire after TTL")
	}
}
