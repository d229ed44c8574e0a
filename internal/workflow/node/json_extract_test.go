package node

import (
	"reflect"
	"testing"
)

func TestParseBestEffortJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]any
	}{
		{"empty", "", nil},
		{"plain object", `{"a": 1}`, map[string]any{"a": float64(1)}},
		{
			"object with trailing remark",
			`{"headline": "Happy Diwali"} Umeed hai pasand aayega!`,
			map[string]any{"headline": "Happy Diwali"},
		},
		{
			"fenced object",
			"```json\n{\"tone\": \"warm\"}\n```",
			map[string]any{"tone": "warm"},
		},
		{
			"leading chatter",
			"Yeh raha aapka blueprint:\n{\"size\": \"A5\"}",
			map[string]any{"size": "A5"},
		},
		{
			"braces inside strings",
			`{"note": "use {curly} style", "n": 2}`,
			map[string]any{"note": "use {curly} style", "n": float64(2)},
		},
		{
			"escaped quotes inside strings",
			`{"quote": "she said \"hi\""}`,
			map[string]any{"quote": `she said "hi"`},
		},
		{
			"nested objects",
			`text {"outer": {"inner": true}} more`,
			map[string]any{"outer": map[string]any{"inner": true}},
		},
		{"prose only", "koi json nahi hai yahan", nil},
		{"bare array rejected", `[1, 2, 3]`, nil},
		{"unbalanced braces", `{"a": 1`, nil},
		{
			"skips broken brace then finds object",
			"weird { not json\nactual: {\"b\": 2}",
			map[string]any{"b": float64(2)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBestEffortJSON(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseBestEffortJSON(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
