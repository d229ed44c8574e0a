package card

import (
	"strings"
	"testing"
)

func TestBuildCardHTMLPromptSections(t *testing.T) {
	blueprint := map[string]any{
		"card_summary": "Festive Diwali card",
		"messaging": map[string]any{
			"headline": "Happy Diwali",
			"body":     "Shubhkamnayein",
			"closing":  "Warm regards",
		},
		"visual_direction": map[string]any{
			"palette":               []any{"#FFD700", "maroon"},
			"typography":            "Elegant serif",
			"layout":                "Hero image with centered copy",
			"background_image_plan": "Diya photo as backdrop",
		},
		"image_assets": map[string]any{
			"must_use":       []any{"https://example.com/user.png"},
			"pexels_options": []any{map[string]any{"image_url": "https://example.com/stock.png"}},
		},
		"production_notes": []any{"Keep copy short"},
		"next_questions":   []any{"Exact date?"},
	}

	got := BuildCardHTMLPrompt(blueprint)

	sections := []string{
		"You are an expert HTML/CSS designer",
		"Do not include any JavaScript.",
		"Design intent:",
		"Card copy:",
		"Headline: Happy Diwali",
		"Body: Shubhkamnayein",
		"Closing: Warm regards",
		"Visual direction:",
		"Palette:",
		"#FFD700",
		"Typography: Elegant serif",
		"Layout guidance: Hero image with centered copy",
		"Background plan: Diya photo as backdrop",
		"Imagery cues:",
		"Embed these user-provided images as hero/background assets:",
		"https://example.com/user.png",
		"Optionally reference these Pexels inspirations for mood:",
		"https://example.com/stock.png",
		"Production notes (honour in layout decisions):",
		"- Keep copy short",
		"Open questions from the brief (avoid guessing details):",
		"- Exact date?",
		"Accessibility and formatting requirements:",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(got, section)
		if idx < 0 {
			t.Fatalf("prompt missing %q:\n%s", section, got)
		}
		if idx < last {
			t.Fatalf("prompt section %q out of order", section)
		}
		last = idx
	}
}

func TestBuildCardHTMLPromptOmitsEmptySections(t *testing.T) {
	got := BuildCardHTMLPrompt(map[string]any{})

	for _, absent := range []string{
		"Design intent:",
		"Card copy:",
		"Visual direction:",
		"Imagery cues:",
		"Production notes",
		"Open questions",
	} {
		if strings.Contains(got, absent) {
			t.Fatalf("empty blueprint prompt should omit %q:\n%s", absent, got)
		}
	}
	// 固定的角色说明与可访问性要求永远在场
	if !strings.Contains(got, "Do not include any JavaScript.") {
		t.Fatal("prompt missing baseline instructions")
	}
	if !strings.Contains(got, "Accessibility and formatting requirements:") {
		t.Fatal("prompt missing accessibility section")
	}
}
