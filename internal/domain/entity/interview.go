// Package entity 定义领域实体
package entity

import "time"

type InterviewStatus string

const (
	InterviewStatusActive    InterviewStatus = "active"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

// InterviewSession 需求访谈会话的运行时状态
// 会话由单个对话独占，整个结构随会话生命周期存取
type InterviewSession struct {
	ID     string          `json:"id"`
	Status InterviewStatus `json:"status"`

	// Greeted 欢迎语是否已发送（按会话记录，不使用进程级状态）
	Greeted bool `json:"greeted"`

	// Asked 已提问的问题 id，保留提问顺序
	Asked []string `json:"asked"`

	// PendingQuestionID 当前待回答的问题 id，空串表示无待答问题
	PendingQuestionID string `json:"pending_question_id"`

	Requirements CardRequirements `json:"requirements"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewInterviewSession 创建空白访谈会话
func NewInterviewSession(id string) *InterviewSession {
	now := time.Now()
	return &InterviewSession{
		ID:        id,
		Status:    InterviewStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasAsked 问题是否已提问过
func (s *InterviewSession) HasAsked(questionID string) bool {
	for _, id := range s.Asked {
		if id == questionID {
			return true
		}
	}
	return false
}

// MarkAsked 记录问题已提问
func (s *InterviewSession) MarkAsked(questionID string) {
	if !s.HasAsked(questionID) {
		s.Asked = append(s.Asked, questionID)
	}
}

// Touch 刷新更新时间
func (s *InterviewSession) Touch() {
	s.UpdatedAt = time.Now()
}
