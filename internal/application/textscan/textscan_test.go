package textscan

import (
	"reflect"
	"testing"
)

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no urls", "koi link nahi hai", nil},
		{"single url", "dekho https://example.com/a.png yahan", []string{"https://example.com/a.png"}},
		{
			"multiple in order",
			"pehla http://a.example.com aur doosra https://b.example.com/x?y=1",
			[]string{"http://a.example.com", "https://b.example.com/x?y=1"},
		},
		{"uppercase scheme", "HTTPS://EXAMPLE.COM/BG.JPG try karo", []string{"HTTPS://EXAMPLE.COM/BG.JPG"}},
		{
			"duplicates kept",
			"https://example.com/a https://example.com/a",
			[]string{"https://example.com/a", "https://example.com/a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractURLs(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractURLs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no urls untouched", "plain text", "plain text"},
		{"url removed", "use https://example.com/a.png as background", "use  as background"},
		{"url only", "https://example.com/a.png", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripURLs(tt.text); got != tt.want {
				t.Fatalf("StripURLs(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t ", ""},
		{"trims edges", "  https://example.com/a.png  ", "https://example.com/a.png"},
		{
			"removes internal line break",
			"https://example.com/very\nlong/path.png",
			"https://example.com/verylong/path.png",
		},
		{"already clean is idempotent", "https://example.com/a.png", "https://example.com/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.candidate); got != tt.want {
				t.Fatalf("NormalizeURL(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}
