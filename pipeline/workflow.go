// Package pipeline implements a three stage LLM pipeline that turns a
// free-text feature description into a storyboard of cinematic video chunks.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Model
type Model interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

//counterfeiter:generate . Processor
type Processor interface {
	ProcessInput(ctx context.Context, input string) (*Result, error)
}

//counterfeiter:generate . Prompter
type Prompter interface {
	Prompt(input string) (string, error)
}

//counterfeiter:generate . ResultWriter
type ResultWriter interface {
	WriteResult(path string, v any) error
}

const (
	// WorkflowConversation is the workflow for input that is small talk.
	WorkflowConversation = "general_conversation"
	// WorkflowFeature is the workflow for input describing a video feature.
	WorkflowFeature = "feature_processing"
)

// A Result is the outcome of processing a single user input.
type Result struct {
	ID             uuid.UUID        `json:"id"`
	Workflow       string           `json:"workflow"`
	Classification Classification   `json:"classification"`
	Analysis       *FeatureAnalysis `json:"feature_analysis,omitempty"`
	Storyboard     *Storyboard      `json:"storyboard,omitempty"`
}

// A Record pairs a user input with its result for the session summary.
type Record struct {
	Input  string  `json:"input"`
	Result *Result `json:"result"`
}

// A Workflow runs the classification, analysis and storyboard stages in
// order against a single model.
type Workflow struct {
	logger     *slog.Logger
	classifier *Classifier
	analyzer   *Analyzer
	architect  *Architect
}

// NewWorkflow creates a Workflow with all three stages backed by m.
func NewWorkflow(logger *slog.Logger, m Model) *Workflow {
	return &Workflow{
		logger:     logger,
		classifier: NewClassifier(logger, m),
		analyzer:   NewAnalyzer(logger, m),
		architect:  NewArchitect(logger, m),
	}
}

// ProcessInput classifies the input and, for feature descriptions, runs the
// analysis and storyboard stages. Conversation input short-circuits with a
// conversation result.
func (w *Workflow) ProcessInput(ctx context.Context, input string) (*Result, error) {
	w.logger.Info("processing input", "input", input)

	c, err := w.classifier.Classify(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("classification: %w", err)
	}
	w.logger.Info("input classified", "classification", c)

	r := &Result{ID: uuid.New(), Classification: c}
	if c == ClassConversation {
		r.Workflow = WorkflowConversation
		return r, nil
	}

	a, err := w.analyzer.Analyze(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("feature analysis: %w", err)
	}

	s, err := w.architect.GenerateStoryboard(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("storyboard generation: %w", err)
	}

	r.Workflow = WorkflowFeature
	r.Analysis = a
	r.Storyboard = s
	return r, nil
}

// generate sends a single human message to the model and returns the text of
// the first choice.
func generate(ctx context.Context, m Model, prompt string) (string, error) {
	r, err := m.GenerateContent(
		ctx,
		[]llms.MessageContent{
			{
				Role: schema.ChatMessageTypeHuman,
				Parts: []llms.ContentPart{
					llms.TextPart(prompt),
				},
			},
		},
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return "", err
	}
	if len(r.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return r.Choices[0].Content, nil
}
