package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// A ConceptAnalysis captures what the feature is worth and to whom.
type ConceptAnalysis struct {
	CoreValuePropositions []string `json:"core_value_propositions"`
	PainPoints            []string `json:"pain_points"`
	Stakeholders          []string `json:"stakeholders"`
	UseCases              []string `json:"use_cases"`
}

// A NarrativeDesign captures how the feature could be told as a story.
type NarrativeDesign struct {
	StoryArcs       []string `json:"story_arcs"`
	EmotionalBeats  []string `json:"emotional_beats"`
	VisualAudioSync []string `json:"visual_audio_sync"`
}

// A FeatureAnalysis is the structured creative analysis of a feature
// description.
type FeatureAnalysis struct {
	ConceptAnalysis ConceptAnalysis `json:"concept_analysis"`
	NarrativeDesign NarrativeDesign `json:"narrative_design"`
}

// An Analyzer extracts a structured creative analysis from a feature
// description.
type Analyzer struct {
	logger *slog.Logger
	model  Model
}

// NewAnalyzer creates an Analyzer backed by m.
func NewAnalyzer(logger *slog.Logger, m Model) *Analyzer {
	return &Analyzer{logger: logger, model: m}
}

// Analyze asks the model for the concept analysis and narrative design of
// the description.
func (a *Analyzer) Analyze(ctx context.Context, description string) (*FeatureAnalysis, error) {
	prompt, err := analyzePrompt.Format(map[string]any{"description": description})
	if err != nil {
		return nil, fmt.Errorf("formatting analyze prompt: %w", err)
	}

	raw, err := generate(ctx, a.model, prompt)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("raw model output", "stage", "analyze", "output", raw)

	var fa FeatureAnalysis
	if err := DecodeObject(raw, &fa); err != nil {
		return nil, err
	}

	a.logger.Info("feature analysis complete",
		"value_propositions", len(fa.ConceptAnalysis.CoreValuePropositions),
		"story_arcs", len(fa.NarrativeDesign.StoryArcs),
	)
	return &fa, nil
}
