package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"card-studio-ai-api/internal/domain/entity"
	"card-studio-ai-api/internal/domain/repository"
	apperrors "card-studio-ai-api/pkg/errors"
)

// InterviewSessionRepo 基于 Redis 的访谈会话存储。
// 会话是有生命周期的短期数据，直接以 JSON 存储并依赖 TTL 自动回收。
type InterviewSessionRepo struct {
	client *Client
	ttl    time.Duration
}

// NewInterviewSessionRepo 创建访谈会话存储
func NewInterviewSessionRepo(client *Client, ttl time.Duration) repository.InterviewSessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &InterviewSessionRepo{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("interview:session:%s", id)
}

// Save 保存会话并刷新 TTL
func (r *InterviewSessionRepo) Save(ctx context.Context, session *entity.InterviewSession) error {
	ctx, span := tracer.Start(ctx, "interview_repo.Save",
		trace.WithAttributes(attribute.String("session.id", session.ID)))
	defer span.End()

	data, err := json.Marshal(session)
	if err != nil {
		span.RecordError(err)
		return apperrors.ErrCacheError.WithError(err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), data, r.ttl); err != nil {
		span.RecordError(err)
		return apperrors.ErrCacheError.WithError(err)
	}
	return nil
}

// GetByID 读取会话，不存在时返回 (nil, nil)
func (r *InterviewSessionRepo) GetByID(ctx context.Context, id string) (*entity.InterviewSession, error) {
	ctx, span := tracer.Start(ctx, "interview_repo.GetByID",
		trace.WithAttributes(attribute.String("session.id", id)))
	defer span.End()

	raw, err := r.client.Get(ctx, sessionKey(id))
	if err != nil {
		if IsNil(err) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, apperrors.ErrCacheError.WithError(err)
	}

	var session entity.InterviewSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		span.RecordError(err)
		return nil, apperrors.ErrCacheError.WithError(err)
	}
	return &session, nil
}

// Delete 删除会话
func (r *InterviewSessionRepo) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "interview_repo.Delete",
		trace.WithAttributes(attribute.String("session.id", id)))
	defer span.End()

	if err := r.client.Del(ctx, sessionKey(id)); err != nil {
		span.RecordError(err)
		return apperrors.ErrCacheError.WithError(err)
	}
	return nil
}
