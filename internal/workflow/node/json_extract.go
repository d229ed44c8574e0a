package node

import (
	"encoding/json"
	"strings"
)

// ParseBestEffortJSON 从可能夹杂注释、代码围栏或尾随闲聊的文本中恢复
// 顶层 JSON 对象。依次尝试三类候选：第一个配平的 {...} 片段、第一个
// 配平的 [...] 片段、整段原文；只有解析结果是对象（键值映射）才算成功，
// 裸数组或标量不算。全部失败返回 nil。
func ParseBestEffortJSON(text string) map[string]any {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil
	}

	for _, candidate := range jsonCandidates(raw) {
		var parsed any
		if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
			continue
		}
		if obj, ok := parsed.(map[string]any); ok {
			return obj
		}
	}
	return nil
}

// jsonCandidates 收集文本中潜在的 JSON 片段
func jsonCandidates(raw string) []string {
	candidates := make([]string, 0, 3)

	collect := func(opener, closer byte) {
		start := strings.IndexByte(raw, opener)
		for start >= 0 {
			if segment := balancedSegment(raw, start, opener, closer); segment != "" {
				candidates = append(candidates, segment)
				return
			}
			next := strings.IndexByte(raw[start+1:], opener)
			if next < 0 {
				return
			}
			start += 1 + next
		}
	}

	collect('{', '}')
	collect('[', ']')

	if len(candidates) == 0 {
		candidates = append(candidates, raw)
	}
	return candidates
}

// balancedSegment 从 start 开始提取最小的括号配平子串。
// 深度计数跳过字符串字面量内容（含转义引号），字符串内的括号不影响深度。
// 无法配平时返回空串。
func balancedSegment(message string, start int, opener, closer byte) string {
	depth := 0
	inString := false
	escape := false
	for i := start; i < len(message); i++ {
		ch := message[i]
		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return message[start : i+1]
			}
		}
	}
	return ""
}
