package interview

import (
	"strings"

	"card-studio-ai-api/internal/application/textscan"
	"card-studio-ai-api/internal/domain/entity"
)

// Engine 需求访谈引擎。题库固定，会话状态全部保存在
// entity.InterviewSession 上，引擎本身无状态，可被多个会话共享。
type Engine struct {
	bank []Question
}

// NewEngine 创建访谈引擎
func NewEngine() *Engine {
	return &Engine{bank: QuestionBank()}
}

// Bank 返回题库（声明顺序）
func (e *Engine) Bank() []Question {
	return e.bank
}

// QuestionByID 按 id 查找题目，未找到返回 nil
func (e *Engine) QuestionByID(id string) *Question {
	for i := range e.bank {
		if e.bank[i].ID == id {
			return &e.bank[i]
		}
	}
	return nil
}

// Welcome 返回欢迎语，每个会话最多一次
func (e *Engine) Welcome(sess *entity.InterviewSession) string {
	if sess.Greeted {
		return ""
	}
	sess.Greeted = true
	sess.Touch()
	return "Namaste! Main aapka card design assistant hoon. Kuch sawaalon se hum" +
		" ek perfect card banayenge. Aap kisi bhi waqt 'done' likh kar design" +
		" banwana start kar sakte hain jab aapko lage details complete ho gayi hain."
}

// NextQuestion 选择下一个要问的题目。
// 第一轮只看必填且字段为空的题目；第二轮按声明顺序取第一个未问过、
// 适用且字段未被提前填充的题目。无题可问时会话进入 completed 状态。
func (e *Engine) NextQuestion(sess *entity.InterviewSession) *Question {
	req := &sess.Requirements

	// 第一轮：必填优先，不受已问集合影响
	for i := range e.bank {
		q := &e.bank[i]
		if !q.Required {
			continue
		}
		if strings.TrimSpace(req.Field(q.Field)) != "" {
			continue
		}
		if !q.Applicable(req) {
			continue
		}
		e.markPending(sess, q)
		return q
	}

	// 第二轮：可选题目，跳过已问、不适用与已被推断填充的
	for i := range e.bank {
		q := &e.bank[i]
		if sess.HasAsked(q.ID) {
			continue
		}
		if !q.Applicable(req) {
			continue
		}
		if q.Field != "" && req.Field(q.Field) != "" {
			continue
		}
		e.markPending(sess, q)
		return q
	}

	sess.PendingQuestionID = ""
	if sess.Status == entity.InterviewStatusActive {
		sess.Status = entity.InterviewStatusCompleted
	}
	sess.Touch()
	return nil
}

func (e *Engine) markPending(sess *entity.InterviewSession, q *Question) {
	sess.PendingQuestionID = q.ID
	sess.MarkAsked(q.ID)
	sess.Touch()
}

// IngestAnswer 摄取一条答案。空白输入不做任何事。
// URL 从原始文本中机会式捕获，与当前题目无关；随后由当前题目的
// Handler 或默认字段赋值完成写入。答案一次性生效，没有重试概念。
func (e *Engine) IngestAnswer(sess *entity.InterviewSession, answer string) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return
	}

	for _, u := range textscan.ExtractURLs(answer) {
		sess.Requirements.AddImageURL(u)
	}

	if sess.PendingQuestionID == "" {
		sess.Touch()
		return
	}
	q := e.QuestionByID(sess.PendingQuestionID)
	if q == nil {
		sess.Touch()
		return
	}

	req := &sess.Requirements
	switch {
	case q.Handler != nil:
		q.Handler(req, answer)
	case q.Field != "":
		// URL 混在句子里时先剥离，避免污染纯文本字段；
		// 剥离后为空则退回原始答案
		cleaned := strings.TrimSpace(textscan.StripURLs(answer))
		if cleaned == "" {
			cleaned = answer
		}
		req.SetField(q.Field, cleaned)
	}

	// 跨字段推断：occasion 的回答可能已经暗示了卡片类别
	if q.ID == "occasion" && strings.TrimSpace(req.CardType) == "" {
		if inferred := InferCardTypeFromText(answer); inferred != "" {
			req.CardType = inferred
		}
	}

	sess.Touch()
}

// HasMoreQuestions 是否还有可问的题目（不改变会话状态）
func (e *Engine) HasMoreQuestions(sess *entity.InterviewSession) bool {
	req := &sess.Requirements
	for i := range e.bank {
		q := &e.bank[i]
		if q.Required && strings.TrimSpace(req.Field(q.Field)) == "" && q.Applicable(req) {
			return true
		}
	}
	for i := range e.bank {
		q := &e.bank[i]
		if sess.HasAsked(q.ID) {
			continue
		}
		if !q.Applicable(req) {
			continue
		}
		if q.Field != "" && req.Field(q.Field) != "" {
			continue
		}
		return true
	}
	return false
}

// MergeText 把新文本并入已有的可选字段。
// 大小写不敏感的重复内容不再追加，保证多次摄取幂等。
func MergeText(existing, addition string) string {
	if existing == "" {
		return addition
	}
	if strings.Contains(strings.ToLower(existing), strings.ToLower(addition)) {
		return existing
	}
	return existing + "; " + addition
}

// summaryLabels 摘要中可选字段的固定展示顺序
var summaryLabels = []struct {
	label string
	field string
}{
	{"Recipient", entity.FieldRecipient},
	{"Relationship", entity.FieldRelationship},
	{"Tone", entity.FieldTone},
	{"Message focus", entity.FieldMessageFocus},
	{"Personal details", entity.FieldPersonalizationDetails},
	{"Color palette", entity.FieldColorPalette},
	{"Typography", entity.FieldTypography},
	{"Visual style", entity.FieldVisualStyle},
	{"Must include", entity.FieldMustIncludeElements},
	{"Call to action", entity.FieldCallToAction},
	{"Delivery format", entity.FieldDeliveryFormat},
	{"Deadline", entity.FieldDeadline},
	{"Additional notes", entity.FieldAdditionalNotes},
	{"Brand notes", entity.FieldBrandNotes},
}

// Summary 生成人类可读的需求摘要，必填字段未填时用占位符展示
func (e *Engine) Summary(sess *entity.InterviewSession) string {
	req := &sess.Requirements
	orDash := func(v string) string {
		if v == "" {
			return "—"
		}
		return v
	}

	parts := []string{
		"Collected requirements:",
		"  Occasion: " + orDash(req.Occasion),
		"  Card type: " + orDash(req.CardType),
		"  Size: " + orDash(req.Size),
	}
	for _, entry := range summaryLabels {
		if v := req.Field(entry.field); v != "" {
			parts = append(parts, "  "+entry.label+": "+v)
		}
	}
	if len(req.ImageURLs) > 0 {
		parts = append(parts, "  Image URLs:")
		for _, u := range req.ImageURLs {
			parts = append(parts, "    - "+u)
		}
	}
	return strings.Join(parts, "\n")
}
