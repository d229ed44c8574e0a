package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"card-studio-ai-api/internal/domain/entity"
	apperrors "card-studio-ai-api/pkg/errors"
)

// memorySessionRepo 内存版会话仓储，模拟 Redis 的序列化往返
type memorySessionRepo struct {
	store map[string][]byte
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{store: make(map[string][]byte)}
}

func (r *memorySessionRepo) Save(_ context.Context, sess *entity.InterviewSession) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	r.store[sess.ID] = payload
	return nil
}

func (r *memorySessionRepo) GetByID(_ context.Context, id string) (*entity.InterviewSession, error) {
	payload, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	var sess entity.InterviewSession
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *memorySessionRepo) Delete(_ context.Context, id string) error {
	delete(r.store, id)
	return nil
}

func newTestService() (*Service, *memorySessionRepo) {
	repo := newMemorySessionRepo()
	return NewService(NewEngine(), repo), repo
}

func TestServiceStartSession(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sess, greeting, err := svc.StartSession(ctx, "api")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("session without id")
	}
	if greeting == "" {
		t.Fatal("first session must carry a greeting")
	}
	if sess.Status != entity.InterviewStatusActive {
		t.Fatalf("Status = %q, want active", sess.Status)
	}
	if _, ok := repo.store[sess.ID]; !ok {
		t.Fatal("session not persisted")
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetSession(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("GetSession err = %v, want session not found", err)
	}
}

func TestServiceQuestionAnswerFlow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	sess, _, err := svc.StartSession(ctx, "api")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	_, q, err := svc.NextQuestion(ctx, sess.ID)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if q == nil || q.ID != "occasion" {
		t.Fatalf("first question = %v, want occasion", q)
	}

	updated, err := svc.SubmitAnswer(ctx, sess.ID, "diwali party")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if updated.Requirements.Occasion != "diwali party" {
		t.Fatalf("Occasion = %q, want answer stored", updated.Requirements.Occasion)
	}

	// 答案必须经过持久化往返后仍然可见
	_, summary, err := svc.Summary(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(summary, "  Occasion: diwali party") {
		t.Fatalf("Summary = %q, want stored occasion", summary)
	}
}

func TestServiceSubmitAnswerAfterCompletion(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sess, _, err := svc.StartSession(ctx, "api")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	stored, err := repo.GetByID(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	stored.Status = entity.InterviewStatusCompleted
	if err := repo.Save(ctx, stored); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := svc.SubmitAnswer(ctx, sess.ID, "late answer"); !errors.Is(err, apperrors.ErrSessionCompleted) {
		t.Fatalf("SubmitAnswer err = %v, want session completed", err)
	}
}

func TestServiceCancel(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	sess, _, err := svc.StartSession(ctx, "api")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	cancelled, err := svc.Cancel(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != entity.InterviewStatusCancelled {
		t.Fatalf("Status = %q, want cancelled", cancelled.Status)
	}
	if cancelled.PendingQuestionID != "" {
		t.Fatalf("PendingQuestionID = %q, want cleared", cancelled.PendingQuestionID)
	}

	// 取消后不再接受回答
	if _, err := svc.SubmitAnswer(ctx, sess.ID, "too late"); !errors.Is(err, apperrors.ErrSessionNotActive) {
		t.Fatalf("SubmitAnswer err = %v, want session not active", err)
	}

	// 重复取消幂等，会话仍可读
	again, err := svc.Cancel(ctx, sess.ID)
	if err != nil {
		t.Fatalf("second Cancel: %v", err)
	}
	if again.Status != entity.InterviewStatusCancelled {
		t.Fatalf("Status after second cancel = %q, want cancelled", again.Status)
	}
	if _, err := svc.GetSession(ctx, sess.ID); err != nil {
		t.Fatalf("GetSession after cancel: %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sess, _, err := svc.StartSession(ctx, "api")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if err := svc.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.store[sess.ID]; ok {
		t.Fatal("session still persisted after delete")
	}
	if _, err := svc.GetSession(ctx, sess.ID); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("GetSession err = %v, want session not found", err)
	}
}
