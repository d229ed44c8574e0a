package card

import "strings"

// BuildCardHTMLPrompt 根据蓝图拼装交给 LLM 渲染 HTML 的完整提示词
func BuildCardHTMLPrompt(blueprint map[string]any) string {
	summary := Text(blueprint["card_summary"])
	messaging, _ := blueprint["messaging"].(map[string]any)
	headline := Text(messaging["headline"])
	bodyCopy := Text(messaging["body"])
	closing := Text(messaging["closing"])

	visualDirection, _ := blueprint["visual_direction"].(map[string]any)
	palette := AsList(visualDirection["palette"])
	typography := Text(visualDirection["typography"])
	layout := Text(visualDirection["layout"])
	backgroundPlan := Text(visualDirection["background_image_plan"])

	imageAssets, _ := blueprint["image_assets"].(map[string]any)
	mustUseImages := CollectImageURLs(imageAssets["must_use"])
	inspirationalImages := CollectImageURLs(imageAssets["pexels_options"])

	productionNotes := AsList(blueprint["production_notes"])
	nextQuestions := AsList(blueprint["next_questions"])

	lines := []string{
		"You are an expert HTML/CSS designer creating a single invitation or greeting card.",
		"Produce a complete <html> document with inline <style> so the design renders standalone.",
		"Do not include any JavaScript.",
	}

	if summary != "" {
		lines = append(lines, "", "Design intent:", "- "+summary)
	}

	var contentLines []string
	if headline != "" {
		contentLines = append(contentLines, "Headline: "+headline)
	}
	if bodyCopy != "" {
		contentLines = append(contentLines, "Body: "+bodyCopy)
	}
	if closing != "" {
		contentLines = append(contentLines, "Closing: "+closing)
	}
	if len(contentLines) > 0 {
		lines = append(lines, "", "Card copy:")
		for _, item := range contentLines {
			lines = append(lines, "- "+item)
		}
	}

	var directionLines []string
	if len(palette) > 0 {
		directionLines = append(directionLines, "Palette:")
		for _, color := range palette {
			directionLines = append(directionLines, "  - "+color)
		}
	}
	if typography != "" {
		directionLines = append(directionLines, "Typography: "+typography)
	}
	if layout != "" {
		directionLines = append(directionLines, "Layout guidance: "+layout)
	}
	if backgroundPlan != "" {
		directionLines = append(directionLines, "Background plan: "+backgroundPlan)
	}
	if len(directionLines) > 0 {
		lines = append(lines, "", "Visual direction:")
		for _, item := range directionLines {
			lines = append(lines, "- "+item)
		}
	}

	var imageryLines []string
	if len(mustUseImages) > 0 {
		imageryLines = append(imageryLines, "Embed these user-provided images as hero/background assets:")
		for _, url := range mustUseImages {
			imageryLines = append(imageryLines, "  - "+url)
		}
	}
	if len(inspirationalImages) > 0 {
		imageryLines = append(imageryLines, "Optionally reference these Pexels inspirations for mood:")
		for _, url := range inspirationalImages {
			imageryLines = append(imageryLines, "  - "+url)
		}
	}
	if len(imageryLines) > 0 {
		lines = append(lines, "", "Imagery cues:")
		for _, item := range imageryLines {
			lines = append(lines, "- "+item)
		}
	}

	if len(productionNotes) > 0 {
		lines = append(lines, "", "Production notes (honour in layout decisions):")
		for _, note := range productionNotes {
			lines = append(lines, "- "+note)
		}
	}

	if len(nextQuestions) > 0 {
		lines = append(lines, "", "Open questions from the brief (avoid guessing details):")
		for _, question := range nextQuestions {
			lines = append(lines, "- "+question)
		}
	}

	lines = append(lines,
		"",
		"Accessibility and formatting requirements:",
		"- Make text readable with sufficient contrast.",
		"- Use semantic HTML structure with clearly separated sections.",
		"- Keep the layout responsive for both desktop and mobile widths.",
	)

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
