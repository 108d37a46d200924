// Command ask sends one question to the planner assistant and streams the
// answer to stdout. Useful to check the briefing and API key by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/FACorreiaa/go-eje-planner/internal/api/chat"
)

var (
	model    = flag.String("model", chat.DefaultModel, "the model name, e.g. gemini-2.5-flash")
	thinking = flag.Int("thinking", 0, "thinking budget in tokens")
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}
	flag.Parse()

	question := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if question == "" {
		question = "¿Cuánto me cuesta ir en carro desde Bogotá a Salento?"
	}

	ctx := context.Background()
	client, err := chat.NewGeminiClient(ctx, os.Getenv("GOOGLE_GEMINI_API_KEY"), *model, int32(*thinking))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("> %s\n\n", question)
	if _, err := client.GenerateStream(ctx, chat.BriefingContext, question, func(chunk string) {
		fmt.Print(chunk)
	}); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
}
