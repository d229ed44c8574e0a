// Package main 交互式卡片设计助手的命令行入口
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"card-studio-ai-api/internal/application/card"
	"card-studio-ai-api/internal/application/interview"
	"card-studio-ai-api/internal/config"
	"card-studio-ai-api/internal/domain/entity"
	"card-studio-ai-api/internal/infrastructure/llm"
	"card-studio-ai-api/internal/infrastructure/pexels"
	wfchain "card-studio-ai-api/internal/workflow/chain"
	"card-studio-ai-api/pkg/logger"
)

// doneKeywords 用户用来结束访谈、开始设计的指令词
var doneKeywords = map[string]struct{}{
	"done":              {},
	"design banao":      {},
	"design shuru karo": {},
	"generate":          {},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

	ctx := context.Background()
	engine := interview.NewEngine()
	sess := entity.NewInterviewSession("cli")

	reader := bufio.NewScanner(os.Stdin)
	reader.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Println(engine.Welcome(sess))

	for {
		q := engine.NextQuestion(sess)
		if q == nil {
			break
		}
		fmt.Printf("\n%s\n", q.Render(&sess.Requirements))
		fmt.Print("Aapka jawab: ")
		if !reader.Scan() {
			fmt.Println()
			return
		}
		answer := reader.Text()

		normalized := strings.ToLower(strings.TrimSpace(answer))
		if _, done := doneKeywords[normalized]; done {
			if sess.Requirements.IsCoreComplete() {
				fmt.Println("Theek hai! Main ab tak ki details ke basis par design banaata hoon.")
				break
			}
			missing := strings.Join(sess.Requirements.MissingRequiredFields(), ", ")
			fmt.Printf("Abhi yeh important cheezein missing hain: %s. Pehle inhe share karein.\n", missing)
			continue
		}

		engine.IngestAnswer(sess, answer)
	}

	if !sess.Requirements.IsCoreComplete() {
		fmt.Println("Card design shuru karne se pehle occasion, card type aur size zaroori hain.")
		return
	}

	fmt.Println("\nYeh hai ab tak ka summary:")
	fmt.Println(engine.Summary(sess))

	fmt.Print("\nKya aap chahte hain ki main card blueprint generate karu? [Y/n]: ")
	if reader.Scan() {
		confirm := strings.ToLower(strings.TrimSpace(reader.Text()))
		if confirm == "n" || confirm == "no" || confirm == "nahi" {
			fmt.Println("Thik hai! Aap kabhi bhi dubara run kar sakte hain.")
			return
		}
	}

	if err := cfg.ValidateLLM(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Kripya configs/config.yaml ya environment variables mein LLM credentials set karein.")
		os.Exit(1)
	}

	factory := llm.NewEinoFactory(cfg)
	searcher := pexels.NewClient(&cfg.Pexels)
	blueprints := card.NewBlueprintGenerator(wfchain.NewBlueprintChain(factory), searcher)
	htmlGen := card.NewHTMLGenerator(wfchain.NewCardHTMLChain(factory))

	result, err := blueprints.Generate(ctx, &sess.Requirements, card.GenerateOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Blueprint generation failed: %v\n", err)
		os.Exit(1)
	}

	if result.Blueprint != nil {
		fmt.Println("\nCard Blueprint Ready!")
		pretty, _ := json.MarshalIndent(result.Blueprint, "", "  ")
		fmt.Println(string(pretty))
	} else {
		fmt.Println("\nLLM se JSON parse nahi ho paya. Raw response neeche diya gaya hai:")
		fmt.Println(result.Raw)
	}

	if result.Preview != "" {
		fmt.Println("\nHTML Preview:")
		fmt.Println(result.Preview)
		fmt.Println("\nIs HTML ko copy karke kisi .html file mein save karein aur browser mein khol kar card dekh sakte hain.")
	}

	if result.Prompt != "" {
		fmt.Println("\nHTML generation prompt:")
		fmt.Println(result.Prompt)
	}

	if result.Blueprint != nil {
		htmlResult, err := htmlGen.Generate(ctx, result.Blueprint, card.GenerateOptions{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Card HTML generation failed: %v\n", err)
		} else if htmlResult.HTML != "" {
			fmt.Println("\nLLM se generated final HTML:")
			fmt.Println(htmlResult.HTML)
			fmt.Println("\nIs final HTML ko .html file mein save karke directly browser mein khol sakte hain.")
		} else if htmlResult.Raw != "" {
			fmt.Println("\nLLM se HTML response aaya par clean extract nahi ho paya. Raw response neeche diya gaya hai:")
			fmt.Println(htmlResult.Raw)
		}
	}

	if len(result.Pexels) > 0 {
		fmt.Println("\nInspiring backgrounds from Pexels:")
		for _, photo := range result.Pexels {
			fmt.Printf("  %s  (by %s, %s)\n", photo.ImageURL, photo.Photographer, photo.AvgColor)
		}
	}
}
