package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"card-studio-ai-api/internal/application/interview"
	"card-studio-ai-api/internal/domain/entity"
	"card-studio-ai-api/internal/interfaces/http/dto"
)

// fakeSessionRepo 内存版会话仓储
type fakeSessionRepo struct {
	sessions map[string]*entity.InterviewSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.InterviewSession)}
}

func (r *fakeSessionRepo) Save(_ context.Context, sess *entity.InterviewSession) error {
	copied := *sess
	r.sessions[sess.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*entity.InterviewSession, error) {
	sess, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *sess
	return &copied, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeSessionRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeSessionRepo()
	svc := interview.NewService(interview.NewEngine(), repo)
	h := NewInterviewHandler(svc)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/interviews", h.Start)
	v1.GET("/interviews/:sid", h.Get)
	v1.GET("/interviews/:sid/next-question", h.NextQuestion)
	v1.POST("/interviews/:sid/answers", h.SubmitAnswer)
	v1.GET("/interviews/:sid/summary", h.Summary)
	v1.POST("/interviews/:sid/cancel", h.Cancel)
	v1.DELETE("/interviews/:sid", h.Delete)
	return r, repo
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("decode data: %v\n%s", err, w.Body.String())
		}
	}
}

func TestInterviewLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	// 创建会话
	w := doRequest(t, r, http.MethodPost, "/api/v1/interviews", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("start status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var started dto.StartInterviewResponse
	decodeData(t, w, &started)
	if started.SessionID == "" || started.Greeting == "" {
		t.Fatalf("start response incomplete: %+v", started)
	}

	// 第一道问题永远是 occasion
	w = doRequest(t, r, http.MethodGet, "/api/v1/interviews/"+started.SessionID+"/next-question", "")
	if w.Code != http.StatusOK {
		t.Fatalf("next-question status = %d: %s", w.Code, w.Body.String())
	}
	var next dto.NextQuestionResponse
	decodeData(t, w, &next)
	if next.Done || next.QuestionID != "occasion" {
		t.Fatalf("next question = %+v, want occasion", next)
	}

	// 提交回答
	w = doRequest(t, r, http.MethodPost, "/api/v1/interviews/"+started.SessionID+"/answers",
		`{"answer": "office diwali party"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("answer status = %d: %s", w.Code, w.Body.String())
	}
	var sess dto.InterviewSessionResponse
	decodeData(t, w, &sess)
	if sess.Requirements["occasion"] != "office diwali party" {
		t.Fatalf("requirements = %v, want occasion recorded", sess.Requirements)
	}

	// 摘要包含已收集的需求
	w = doRequest(t, r, http.MethodGet, "/api/v1/interviews/"+started.SessionID+"/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d: %s", w.Code, w.Body.String())
	}
	var summary dto.InterviewSummaryResponse
	decodeData(t, w, &summary)
	if !strings.Contains(summary.Summary, "office diwali party") {
		t.Fatalf("summary = %q, want collected occasion", summary.Summary)
	}

	// 删除后不可再访问
	w = doRequest(t, r, http.MethodDelete, "/api/v1/interviews/"+started.SessionID, "")
	if w.Code != http.StatusOK && w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d: %s", w.Code, w.Body.String())
	}
	w = doRequest(t, r, http.MethodGet, "/api/v1/interviews/"+started.SessionID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
}

func TestInterviewGetUnknownSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/interviews/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestInterviewCancel(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/interviews", "")
	var started dto.StartInterviewResponse
	decodeData(t, w, &started)

	w = doRequest(t, r, http.MethodPost, "/api/v1/interviews/"+started.SessionID+"/cancel", "")
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status = %d: %s", w.Code, w.Body.String())
	}
	var sess dto.InterviewSessionResponse
	decodeData(t, w, &sess)
	if sess.Status != "cancelled" {
		t.Fatalf("status = %q, want cancelled", sess.Status)
	}

	// 取消之后回答被拒绝
	w = doRequest(t, r, http.MethodPost, "/api/v1/interviews/"+started.SessionID+"/answers",
		`{"answer": "too late"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("answer after cancel status = %d, want 409: %s", w.Code, w.Body.String())
	}
}

func TestInterviewSubmitAnswerValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/interviews", "")
	var started dto.StartInterviewResponse
	decodeData(t, w, &started)

	w = doRequest(t, r, http.MethodPost, "/api/v1/interviews/"+started.SessionID+"/answers", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}
