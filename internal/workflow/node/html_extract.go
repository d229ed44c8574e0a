package node

import "strings"

const htmlCloseTag = "</html>"

// ExtractHTMLDocument 从模型输出中分离出完整的 HTML 文档。
// 容忍代码围栏、前后缀闲聊与被截断的结尾；找不到文档时返回空串，
// 调用方应把空串当作"展示原始文本"的正常分支处理。
func ExtractHTMLDocument(text string) string {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return ""
	}

	raw = stripCodeFence(raw)
	if raw == "" {
		return ""
	}

	lowered := strings.ToLower(raw)

	// 起点取 doctype 声明与根标签中靠前的那个
	docIdx := strings.Index(lowered, "<!doctype")
	rootIdx := strings.Index(lowered, "<html")
	start := -1
	switch {
	case docIdx >= 0 && rootIdx >= 0:
		start = docIdx
		if rootIdx < docIdx {
			start = rootIdx
		}
	case docIdx >= 0:
		start = docIdx
	case rootIdx >= 0:
		start = rootIdx
	default:
		return ""
	}

	// 闭合标签只在起点之后找，前文闲聊里出现的 </html> 不算数
	if rel := strings.Index(lowered[start:], htmlCloseTag); rel >= 0 {
		end := start + rel + len(htmlCloseTag)
		return strings.TrimSpace(raw[start:end])
	}

	// 无闭合标签：文档从头开始时按边界截断处理，整段返回
	if start == 0 {
		return raw
	}
	// 闭合标签残片还在后文时尽量截取，否则放弃
	if strings.Contains(lowered[start:], "</html") {
		return strings.TrimSpace(raw[start:])
	}
	return ""
}

// stripCodeFence 去掉包裹文档的三反引号围栏（首行可带语言标签）
func stripCodeFence(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), "```") {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
