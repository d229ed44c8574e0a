package dto

import (
	"card-studio-ai-api/internal/application/interview"
	"card-studio-ai-api/internal/domain/entity"
)

// StartInterviewResponse 创建会话响应
type StartInterviewResponse struct {
	SessionID string `json:"session_id"`
	Greeting  string `json:"greeting"`
	Status    string `json:"status"`
}

// InterviewSessionResponse 会话详情响应
type InterviewSessionResponse struct {
	SessionID         string         `json:"session_id"`
	Status            string         `json:"status"`
	PendingQuestionID string         `json:"pending_question_id,omitempty"`
	Asked             []string       `json:"asked,omitempty"`
	Requirements      map[string]any `json:"requirements"`
	CreatedAt         string         `json:"created_at"`
	UpdatedAt         string         `json:"updated_at"`
}

// NewInterviewSessionResponse 由会话实体构造响应
func NewInterviewSessionResponse(sess *entity.InterviewSession) *InterviewSessionResponse {
	return &InterviewSessionResponse{
		SessionID:         sess.ID,
		Status:            string(sess.Status),
		PendingQuestionID: sess.PendingQuestionID,
		Asked:             sess.Asked,
		Requirements:      sess.Requirements.ToSummaryMap(),
		CreatedAt:         sess.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:         sess.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NextQuestionResponse 下一问题响应。
// Done 为 true 表示没有剩余问题，此时 Question 为空。
type NextQuestionResponse struct {
	SessionID  string `json:"session_id"`
	Done       bool   `json:"done"`
	QuestionID string `json:"question_id,omitempty"`
	Field      string `json:"field,omitempty"`
	Required   bool   `json:"required,omitempty"`
	Question   string `json:"question,omitempty"`
}

// NewNextQuestionResponse 由问题与会话构造响应
func NewNextQuestionResponse(sess *entity.InterviewSession, q *interview.Question) *NextQuestionResponse {
	resp := &NextQuestionResponse{SessionID: sess.ID}
	if q == nil {
		resp.Done = true
		return resp
	}
	resp.QuestionID = q.ID
	resp.Field = q.Field
	resp.Required = q.Required
	resp.Question = q.Render(&sess.Requirements)
	return resp
}

// SubmitAnswerRequest 提交回答请求
type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// InterviewSummaryResponse 需求摘要响应
type InterviewSummaryResponse struct {
	SessionID string         `json:"session_id"`
	Status    string         `json:"status"`
	Summary   string         `json:"summary"`
	Fields    map[string]any `json:"fields"`
	Missing   []string       `json:"missing_required,omitempty"`
}
