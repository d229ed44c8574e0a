package handler

import (
	"github.com/gin-gonic/gin"

	"card-studio-ai-api/internal/application/interview"
	"card-studio-ai-api/internal/interfaces/http/dto"
)

// InterviewHandler 需求访谈处理器
type InterviewHandler struct {
	svc *interview.Service
}

// NewInterviewHandler 创建访谈处理器
func NewInterviewHandler(svc *interview.Service) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

// Start 创建访谈会话
// POST /v1/interviews
func (h *InterviewHandler) Start(c *gin.Context) {
	sess, greeting, err := h.svc.StartSession(c.Request.Context(), "api")
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Created(c, &dto.StartInterviewResponse{
		SessionID: sess.ID,
		Greeting:  greeting,
		Status:    string(sess.Status),
	})
}

// Get 查询会话详情
// GET /v1/interviews/:sid
func (h *InterviewHandler) Get(c *gin.Context) {
	sess, err := h.svc.GetSession(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.NewInterviewSessionResponse(sess))
}

// NextQuestion 取下一条问题
// GET /v1/interviews/:sid/next-question
func (h *InterviewHandler) NextQuestion(c *gin.Context) {
	sess, q, err := h.svc.NextQuestion(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.NewNextQuestionResponse(sess, q))
}

// SubmitAnswer 提交回答
// POST /v1/interviews/:sid/answers
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "answer is required")
		return
	}

	sess, err := h.svc.SubmitAnswer(c.Request.Context(), c.Param("sid"), req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.NewInterviewSessionResponse(sess))
}

// Summary 查询需求摘要
// GET /v1/interviews/:sid/summary
func (h *InterviewHandler) Summary(c *gin.Context) {
	sess, summary, err := h.svc.Summary(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, &dto.InterviewSummaryResponse{
		SessionID: sess.ID,
		Status:    string(sess.Status),
		Summary:   summary,
		Fields:    sess.Requirements.ToSummaryMap(),
		Missing:   sess.Requirements.MissingRequiredFields(),
	})
}

// Cancel 取消会话，之后不再接受回答
// POST /v1/interviews/:sid/cancel
func (h *InterviewHandler) Cancel(c *gin.Context) {
	sess, err := h.svc.Cancel(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.NewInterviewSessionResponse(sess))
}

// Delete 删除会话
// DELETE /v1/interviews/:sid
func (h *InterviewHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("sid")); err != nil {
		respondError(c, err)
		return
	}
	dto.NoContent(c)
}
