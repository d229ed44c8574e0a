package card

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// BlueprintToHTML 把卡片蓝图渲染为可直接保存的静态 HTML 预览。
// 输出刻意不含任何 JavaScript，方便用户复制到独立文件。
func BlueprintToHTML(blueprint map[string]any) string {
	summary := Text(blueprint["card_summary"])
	messaging, _ := blueprint["messaging"].(map[string]any)
	headline := Text(messaging["headline"])
	if headline == "" {
		headline = summary
	}
	if headline == "" {
		headline = "Your Card Headline"
	}
	bodyCopy := Text(messaging["body"])
	closing := Text(messaging["closing"])

	visualDirection, _ := blueprint["visual_direction"].(map[string]any)
	palette := visualDirection["palette"]
	typography := Text(visualDirection["typography"])
	layout := Text(visualDirection["layout"])
	backgroundPlan := Text(visualDirection["background_image_plan"])

	imageAssets, _ := blueprint["image_assets"].(map[string]any)
	backgroundImage := SelectBackgroundImage(imageAssets)
	mustUseImages := CollectImageURLs(imageAssets["must_use"])
	inspirationImages := CollectImageURLs(imageAssets["pexels_options"])

	productionNotes := AsList(blueprint["production_notes"])
	nextQuestions := AsList(blueprint["next_questions"])

	paletteMarkup := renderPalette(palette)
	galleryMarkup := renderGallery(mustUseImages, inspirationImages)
	productionMarkup := renderListItems(productionNotes, "No production notes provided.")
	questionsMarkup := renderListItems(nextQuestions, "No outstanding questions.")

	var metaItems []string
	if typography != "" {
		metaItems = append(metaItems, "<li><strong>Typography:</strong> "+html.EscapeString(typography)+"</li>")
	}
	if layout != "" {
		metaItems = append(metaItems, "<li><strong>Layout:</strong> "+html.EscapeString(layout)+"</li>")
	}
	if backgroundPlan != "" {
		metaItems = append(metaItems, "<li><strong>Background Plan:</strong> "+html.EscapeString(backgroundPlan)+"</li>")
	}

	backgroundStyle := ""
	overlayOpacity := "0"
	textColor := "#1f2933"
	if backgroundImage != "" {
		safeURL := strings.NewReplacer(`"`, "%22", "'", "%27").Replace(backgroundImage)
		backgroundStyle = fmt.Sprintf(" style=\"background-image: url('%s');\"", safeURL)
		overlayOpacity = "1"
		textColor = "#f9fafb"
	}

	summaryBlock := ""
	if summary != "" {
		summaryBlock = `<div class="card__summary">` + html.EscapeString(summary) + `</div>`
	}
	bodyBlock := ""
	if bodyCopy != "" {
		bodyBlock = `<p class="card__body">` + html.EscapeString(bodyCopy) + `</p>`
	}
	closingBlock := ""
	if closing != "" {
		closingBlock = `<p class="card__closing">` + html.EscapeString(closing) + `</p>`
	}
	metaBlock := ""
	if len(metaItems) > 0 {
		metaBlock = `<ul class="meta">` + strings.Join(metaItems, "") + `</ul>`
	}

	return strings.NewReplacer(
		"__OVERLAY_OPACITY__", overlayOpacity,
		"__TEXT_COLOR__", textColor,
		"__BACKGROUND_STYLE__", backgroundStyle,
		"__SUMMARY_BLOCK__", summaryBlock,
		"__HEADLINE__", html.EscapeString(headline),
		"__BODY_BLOCK__", bodyBlock,
		"__CLOSING_BLOCK__", closingBlock,
		"__PALETTE_MARKUP__", paletteMarkup,
		"__GALLERY_MARKUP__", galleryMarkup,
		"__META_BLOCK__", metaBlock,
		"__PRODUCTION_MARKUP__", productionMarkup,
		"__QUESTIONS_MARKUP__", questionsMarkup,
	).Replace(previewTemplate)
}

// renderPalette 渲染色板列表，hex 颜色带色块，其余仅文字
func renderPalette(palette any) string {
	items := AsList(palette)
	if len(items) == 0 {
		label := Text(palette)
		if label == "" {
			label = "Not specified"
		}
		return "<li>" + html.EscapeString(label) + "</li>"
	}

	var b strings.Builder
	for _, entry := range items {
		chipStyle := ""
		if hexColorPattern.MatchString(entry) {
			chipStyle = fmt.Sprintf(" style=\"background:%s;\"", entry)
		}
		b.WriteString(`<li><span class="palette__chip"` + chipStyle + `></span><span>` + html.EscapeString(entry) + `</span></li>`)
	}
	return b.String()
}

// renderGallery 渲染参考图链接，必用图与灵感图分别打标；
// URL 已经过清洗，转义后同时用作链接目标和展示文本
func renderGallery(mustUse, inspirations []string) string {
	if len(mustUse) == 0 && len(inspirations) == 0 {
		return "<li>No reference images collected.</li>"
	}

	var b strings.Builder
	writeLinks := func(tag string, urls []string) {
		for _, url := range urls {
			safe := html.EscapeString(url)
			b.WriteString(`<li><span class="gallery__tag">` + tag + `</span><a href="` + safe + `">` + safe + `</a></li>`)
		}
	}
	writeLinks("Must use", mustUse)
	writeLinks("Inspiration", inspirations)
	return b.String()
}

func renderListItems(items []string, fallback string) string {
	if len(items) == 0 {
		return "<li>" + html.EscapeString(fallback) + "</li>"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("<li>" + html.EscapeString(item) + "</li>")
	}
	return b.String()
}

const previewTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Card Preview</title>
  <style>
    :root {
      color-scheme: light;
      font-family: 'Helvetica Neue', Arial, sans-serif;
    }
    body {
      margin: 0;
      padding: 2rem;
      background: #f3f4f6;
      color: #1f2933;
    }
    .preview {
      max-width: 960px;
      margin: 0 auto;
      display: grid;
      gap: 2rem;
    }
    @media (min-width: 900px) {
      .preview {
        grid-template-columns: 2fr 1fr;
        align-items: start;
      }
    }
    .card {
      position: relative;
      border-radius: 20px;
      overflow: hidden;
      box-shadow: 0 20px 40px rgba(15, 23, 42, 0.18);
      background: linear-gradient(135deg, rgba(255,255,255,0.94), rgba(255,255,255,0.85));
      backdrop-filter: blur(4px);
      min-height: 340px;
      display: flex;
      align-items: stretch;
    }
    .card::before {
      content: "";
      position: absolute;
      inset: 0;
      background: rgba(17, 24, 39, 0.35);
      mix-blend-mode: multiply;
      opacity: __OVERLAY_OPACITY__;
      transition: opacity 0.3s ease;
      pointer-events: none;
    }
    .card__hero {
      background-size: cover;
      background-position: center;
      flex: 1;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 3rem 2.5rem;
      position: relative;
    }
    .card__hero::after {
      content: "";
      position: absolute;
      inset: 0;
      background: rgba(17, 24, 39, 0.55);
      opacity: __OVERLAY_OPACITY__;
    }
    .card__content {
      position: relative;
      z-index: 1;
      width: 100%;
      color: __TEXT_COLOR__;
      text-align: center;
    }
    .card__summary {
      text-transform: uppercase;
      letter-spacing: 0.3em;
      font-size: 0.75rem;
      margin-bottom: 1rem;
      opacity: 0.8;
    }
    .card__headline {
      font-size: clamp(2.2rem, 3vw + 1.5rem, 3.2rem);
      margin: 0 0 1.5rem 0;
      line-height: 1.1;
    }
    .card__body {
      font-size: 1.05rem;
      line-height: 1.6;
      margin: 0 0 2rem 0;
      white-space: pre-line;
    }
    .card__closing {
      font-size: 1rem;
      font-weight: 600;
      margin: 0;
    }
    .details {
      background: white;
      border-radius: 16px;
      padding: 1.5rem;
      box-shadow: 0 12px 24px rgba(15, 23, 42, 0.08);
    }
    .details h2 {
      margin-top: 0;
      font-size: 1.25rem;
    }
    .palette {
      list-style: none;
      padding: 0;
      margin: 0;
      display: flex;
      flex-wrap: wrap;
      gap: 0.75rem;
    }
    .palette li {
      display: flex;
      align-items: center;
      gap: 0.5rem;
      font-size: 0.95rem;
    }
    .palette__chip {
      width: 28px;
      height: 28px;
      border-radius: 50%;
      border: 1px solid rgba(15,23,42,0.15);
      background: #e5e7eb;
      box-shadow: inset 0 1px 2px rgba(255,255,255,0.8);
    }
    .gallery {
      list-style: none;
      padding: 0;
      margin: 0;
      font-size: 0.9rem;
    }
    .gallery li {
      margin-bottom: 0.5rem;
      overflow-wrap: anywhere;
    }
    .gallery__tag {
      display: inline-block;
      margin-right: 0.5rem;
      padding: 0.1rem 0.5rem;
      border-radius: 999px;
      background: #eef2ff;
      font-size: 0.75rem;
      text-transform: uppercase;
      letter-spacing: 0.08em;
    }
    .details ul {
      padding-left: 1.2rem;
    }
    .details li {
      margin-bottom: 0.5rem;
    }
    .meta {
      list-style: none;
      padding: 0;
      margin: 1rem 0 0 0;
      font-size: 0.95rem;
    }
    .meta li {
      margin-bottom: 0.5rem;
    }
    footer {
      margin-top: 2rem;
      font-size: 0.85rem;
      color: #4b5563;
      text-align: center;
    }
  </style>
</head>
<body>
  <div class="preview">
    <div class="card">
      <div class="card__hero"__BACKGROUND_STYLE__>
        <div class="card__content">
          __SUMMARY_BLOCK__
          <h1 class="card__headline">__HEADLINE__</h1>
          __BODY_BLOCK__
          __CLOSING_BLOCK__
        </div>
      </div>
    </div>
    <aside class="details">
      <h2>Design Direction</h2>
      <h3>Palette</h3>
      <ul class="palette">__PALETTE_MARKUP__</ul>
      __META_BLOCK__
      <h3>Reference Images</h3>
      <ul class="gallery">__GALLERY_MARKUP__</ul>
      <h3>Production Notes</h3>
      <ul>__PRODUCTION_MARKUP__</ul>
      <h3>Open Questions</h3>
      <ul>__QUESTIONS_MARKUP__</ul>
    </aside>
  </div>
  <footer>Generated from your card blueprint. Feel free to customise the HTML further.</footer>
</body>
</html>`
