package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// A Classification labels what kind of input the user provided.
type Classification string

const (
	// ClassConversation is input that is greeting, small talk or chit-chat.
	ClassConversation Classification = "General Conversation"
	// ClassFeature is input describing a feature for video creation.
	ClassFeature Classification = "Feature Description"
)

// A Classifier decides whether input is conversation or a feature description.
type Classifier struct {
	logger *slog.Logger
	model  Model
}

// NewClassifier creates a Classifier backed by m.
func NewClassifier(logger *slog.Logger, m Model) *Classifier {
	return &Classifier{logger: logger, model: m}
}

// Classify asks the model to label the input and returns the classification.
// It errors if the model answers with anything other than the two known
// labels.
func (c *Classifier) Classify(ctx context.Context, input string) (Classification, error) {
	prompt, err := classifyPrompt.Format(map[string]any{"user_input": input})
	if err != nil {
		return "", fmt.Errorf("formatting classify prompt: %w", err)
	}

	raw, err := generate(ctx, c.model, prompt)
	if err != nil {
		return "", err
	}
	c.logger.Debug("raw model output", "stage", "classify", "output", raw)

	var resp struct {
		Classification Classification `json:"classification"`
	}
	if err := DecodeObject(raw, &resp); err != nil {
		return "", err
	}

	switch resp.Classification {
	case ClassConversation, ClassFeature:
		return resp.Classification, nil
	}
	return "", fmt.Errorf("unknown classification: %q", resp.Classification)
}
