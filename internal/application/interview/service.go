package interview

import (
	"context"

	"github.com/google/uuid"

	"card-studio-ai-api/internal/domain/entity"
	"card-studio-ai-api/internal/domain/repository"
	apperrors "card-studio-ai-api/pkg/errors"
	"card-studio-ai-api/pkg/metrics"
)

// Service 在无状态 Engine 之上提供有会话持久化的访谈能力
type Service struct {
	engine *Engine
	repo   repository.InterviewSessionRepository
}

// NewService 创建访谈服务
func NewService(engine *Engine, repo repository.InterviewSessionRepository) *Service {
	return &Service{engine: engine, repo: repo}
}

// Engine 暴露底层问题引擎，CLI 复用
func (s *Service) Engine() *Engine {
	return s.engine
}

// StartSession 创建新会话并返回欢迎语
func (s *Service) StartSession(ctx context.Context, source string) (*entity.InterviewSession, string, error) {
	sess := entity.NewInterviewSession(uuid.NewString())
	greeting := s.engine.Welcome(sess)

	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, "", err
	}
	if source == "" {
		source = "api"
	}
	metrics.InterviewSessionsTotal.WithLabelValues(source).Inc()
	return sess, greeting, nil
}

// GetSession 读取会话，不存在时返回会话未找到错误
func (s *Service) GetSession(ctx context.Context, id string) (*entity.InterviewSession, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

// NextQuestion 取下一条要问的问题。
// 没有剩余问题时返回 nil 并把会话标记为已完成。
func (s *Service) NextQuestion(ctx context.Context, id string) (*entity.InterviewSession, *Question, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	q := s.engine.NextQuestion(sess)
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, nil, err
	}
	if q != nil {
		metrics.InterviewQuestionsAsked.WithLabelValues(q.ID).Inc()
	}
	return sess, q, nil
}

// SubmitAnswer 吸收一条回答并保存会话
func (s *Service) SubmitAnswer(ctx context.Context, id, answer string) (*entity.InterviewSession, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	switch sess.Status {
	case entity.InterviewStatusCompleted:
		return nil, apperrors.ErrSessionCompleted
	case entity.InterviewStatusCancelled:
		return nil, apperrors.ErrSessionNotActive
	}

	s.engine.IngestAnswer(sess, answer)
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	metrics.InterviewAnswersIngested.Inc()
	return sess, nil
}

// Summary 返回当前需求的人类可读摘要
func (s *Service) Summary(ctx context.Context, id string) (*entity.InterviewSession, string, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return sess, s.engine.Summary(sess), nil
}

// Cancel 取消会话。会话保留到 TTL 过期，之后不再接受回答；重复取消幂等
func (s *Service) Cancel(ctx context.Context, id string) (*entity.InterviewSession, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status == entity.InterviewStatusCancelled {
		return sess, nil
	}

	sess.Status = entity.InterviewStatusCancelled
	sess.PendingQuestionID = ""
	sess.Touch()
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Delete 删除会话
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
