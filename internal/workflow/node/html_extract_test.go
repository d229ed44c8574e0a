package node

import (
	"strings"
	"testing"
)

func TestExtractHTMLDocument(t *testing.T) {
	doc := "<!DOCTYPE html>\n<html>\n<body>Hello</body>\n</html>"

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"plain document", doc, doc},
		{"surrounding chatter", "Yeh raha card:\n" + doc + "\nPasand aaya?", doc},
		{"code fence", "```html\n" + doc + "\n```", doc},
		{"fence without language tag", "```\n" + doc + "\n```", doc},
		{"lowercase doctype", "<!doctype html><html><body>x</body></html>", "<!doctype html><html><body>x</body></html>"},
		{"html tag without doctype", "intro <html><body>x</body></html>", "<html><body>x</body></html>"},
		{"no document at all", "sirf baatein, koi markup nahi", ""},
		{
			"truncated from start returned whole",
			"<!DOCTYPE html><html><body>cut off here",
			"<!DOCTYPE html><html><body>cut off here",
		},
		{
			"truncated close tag fragment",
			"prefix text <html><body>x</body></html",
			"<html><body>x</body></html",
		},
		{
			"prefixed and truncated without fragment",
			"prefix text <html><body>lost the ending",
			"",
		},
		{
			"close tag in leading chatter ignored",
			"Pehle wale draft mein </html> jaldi aa gaya tha, ab sahi hai:\n<!DOCTYPE html><html><body>Hi</body></html>",
			"<!DOCTYPE html><html><body>Hi</body></html>",
		},
		{
			"close tag only before document",
			"purana </html> mention <html><body>naya draft",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractHTMLDocument(tt.text); got != tt.want {
				t.Fatalf("ExtractHTMLDocument(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractHTMLDocumentStopsAtCloseTag(t *testing.T) {
	text := "<html><body>x</body></html> trailing explanation"
	got := ExtractHTMLDocument(text)
	if strings.Contains(got, "trailing") {
		t.Fatalf("ExtractHTMLDocument() = %q, want content after </html> dropped", got)
	}
	if !strings.HasSuffix(got, "</html>") {
		t.Fatalf("ExtractHTMLDocument() = %q, want </html> suffix", got)
	}
}

func TestTruncateByRunes(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exact limit", "abcde", 5, "abcde"},
		{"truncated", "abcdef", 3, "abc"},
		{"multibyte safe", "नमस्ते दुनिया", 6, "नमस्ते"},
		{"zero limit", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateByRunes(tt.s, tt.max); got != tt.want {
				t.Fatalf("TruncateByRunes(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}
