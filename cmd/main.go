/*
Storycut is an interactive assistant for short cinematic video concepts.

It classifies each input as conversation or a feature description. Feature
descriptions are analyzed and turned into a storyboard of eight video
chunks, which can be saved as JSON into the output directory.

It requires a GEMINI_API_KEY, read from the environment or a .env file.
Type 'quit' or send an EOF (CTRL-D) to end the session.
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/amlane/storycut/pipeline"
)

const geminiModel = "gemini-2.5-flash"

func printUsageAndExit() {
	fmt.Fprintf(os.Stderr, "storycut [OUTPUT DIR]\n")
	os.Exit(1)
}

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, nil))

	if len(os.Args) != 2 {
		printUsageAndExit()
	}
	d := os.Args[1]

	_ = godotenv.Load()
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		logger.Error("GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	m, err := googleai.New(ctx,
		googleai.WithAPIKey(key),
		googleai.WithDefaultModel(geminiModel),
	)
	if err != nil {
		logger.Error("initializing model", "err", err)
		os.Exit(1)
	}

	prompter, err := pipeline.NewReadlinePrompter()
	if err != nil {
		logger.Error("initializing prompter", "err", err)
		os.Exit(1)
	}
	defer prompter.Close()

	a := pipeline.NewAssistant(
		logger,
		pipeline.NewWorkflow(logger, m),
		prompter,
		pipeline.NewJSONResultWriter(logger, d),
		os.Stdout,
	)

	if err = a.Run(ctx); err != nil {
		logger.Error("running assistant", "err", err)
		os.Exit(1)
	}
}
