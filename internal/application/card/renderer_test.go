package card

import (
	"strings"
	"testing"
)

func TestBlueprintToHTMLFullBlueprint(t *testing.T) {
	blueprint := map[string]any{
		"card_summary": "Warm Diwali greeting for family",
		"messaging": map[string]any{
			"headline": "Happy Diwali",
			"body":     "Roshni ka tyohaar mubarak ho",
			"closing":  "With love",
		},
		"visual_direction": map[string]any{
			"palette":               []any{"#FFD700", "deep red"},
			"typography":            "Serif display",
			"layout":                "Centered single column",
			"background_image_plan": "Use the diya photo full bleed",
		},
		"image_assets": map[string]any{
			"must_use": []any{"https://example.com/diya.png"},
		},
		"production_notes": []any{"Print at 300dpi"},
		"next_questions":   []any{"Final guest count?"},
	}

	got := BlueprintToHTML(blueprint)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Happy Diwali",
		"Roshni ka tyohaar mubarak ho",
		"With love",
		"background-image: url('https://example.com/diya.png')",
		`style="background:#FFD700;"`,
		"deep red",
		"Serif display",
		"Centered single column",
		"Use the diya photo full bleed",
		"Print at 300dpi",
		"Final guest count?",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("preview missing %q", want)
		}
	}
	for _, token := range []string{
		"__OVERLAY_OPACITY__", "__TEXT_COLOR__", "__BACKGROUND_STYLE__",
		"__SUMMARY_BLOCK__", "__HEADLINE__", "__BODY_BLOCK__", "__CLOSING_BLOCK__",
		"__PALETTE_MARKUP__", "__GALLERY_MARKUP__", "__META_BLOCK__", "__PRODUCTION_MARKUP__", "__QUESTIONS_MARKUP__",
	} {
		if strings.Contains(got, token) {
			t.Fatalf("preview contains unreplaced token %s", token)
		}
	}
	if strings.Contains(got, "<script") {
		t.Fatal("preview must not contain scripts")
	}
}

func TestBlueprintToHTMLFallbacks(t *testing.T) {
	got := BlueprintToHTML(map[string]any{})

	for _, want := range []string{
		"Your Card Headline",
		"Not specified",
		"No reference images collected.",
		"No production notes provided.",
		"No outstanding questions.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("empty-blueprint preview missing %q", want)
		}
	}
	// 无背景图时不渲染内联背景样式
	if strings.Contains(got, "background-image: url(") {
		t.Fatal("preview has background image without assets")
	}
}

func TestBlueprintToHTMLHeadlineFallsBackToSummary(t *testing.T) {
	got := BlueprintToHTML(map[string]any{"card_summary": "Anniversary wishes"})
	if !strings.Contains(got, `<h1 class="card__headline">Anniversary wishes</h1>`) {
		t.Fatalf("headline should fall back to summary:\n%s", got)
	}
}

func TestBlueprintToHTMLEscapesContent(t *testing.T) {
	blueprint := map[string]any{
		"messaging": map[string]any{"headline": `<b>bold</b> & "quoted"`},
		"image_assets": map[string]any{
			"must_use": []any{`https://example.com/a.png?x="1"&y='2'`},
		},
	}
	got := BlueprintToHTML(blueprint)

	if strings.Contains(got, "<b>bold</b>") {
		t.Fatal("headline markup not escaped")
	}
	if !strings.Contains(got, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Fatal("escaped headline missing")
	}
	// 背景 URL 里的引号必须转义，否则会提前终止 style 属性
	if !strings.Contains(got, "url('https://example.com/a.png?x=%221%22&y=%272%27')") {
		t.Fatalf("background URL quotes not sanitised:\n%s", got)
	}
}

func TestBlueprintToHTMLImageGallery(t *testing.T) {
	blueprint := map[string]any{
		"image_assets": map[string]any{
			"must_use": []any{"https://example.com/logo\n.png"},
			"pexels_options": []any{
				map[string]any{"image_url": "https://example.com/stock.png"},
			},
		},
	}

	got := BlueprintToHTML(blueprint)

	// 必用图带标签、URL 内部空白已被清洗
	if !strings.Contains(got, `<span class="gallery__tag">Must use</span><a href="https://example.com/logo.png">`) {
		t.Fatalf("gallery missing must-use link:\n%s", got)
	}
	if !strings.Contains(got, `<span class="gallery__tag">Inspiration</span><a href="https://example.com/stock.png">`) {
		t.Fatalf("gallery missing inspiration link:\n%s", got)
	}
	if strings.Contains(got, "No reference images collected.") {
		t.Fatal("placeholder rendered alongside gallery links")
	}
}

func TestRenderPalette(t *testing.T) {
	got := renderPalette([]any{"#abc", "soft ivory"})
	if !strings.Contains(got, `style="background:#abc;"`) {
		t.Fatalf("hex entry missing chip style: %s", got)
	}
	if strings.Contains(got, `style="background:soft ivory;"`) {
		t.Fatalf("non-hex entry must not get chip style: %s", got)
	}

	if got := renderPalette(nil); !strings.Contains(got, "Not specified") {
		t.Fatalf("renderPalette(nil) = %s, want placeholder", got)
	}
}
