package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// ChunkCount is the fixed number of chunks in a storyboard.
const ChunkCount = 8

// A Chunk is a single ~8 second cinematic video segment.
type Chunk struct {
	Environment     string   `json:"environment"`
	Characters      []string `json:"characters"`
	Activity        string   `json:"activity"`
	CameraDirection string   `json:"camera_direction"`
	AudioVisualSync string   `json:"audio_visual_sync"`
}

// A Storyboard is an ordered set of exactly ChunkCount chunks. On the wire
// it is an object keyed chunk1 through chunk8.
type Storyboard struct {
	Chunks [ChunkCount]Chunk
}

// MarshalJSON renders the storyboard as an object keyed chunk1..chunk8.
func (s Storyboard) MarshalJSON() ([]byte, error) {
	keyed := make(map[string]Chunk, ChunkCount)
	for i, c := range s.Chunks {
		keyed[chunkKey(i)] = c
	}
	return json.Marshal(keyed)
}

// UnmarshalJSON decodes an object keyed chunk1..chunk8. Missing or extra
// keys are an error.
func (s *Storyboard) UnmarshalJSON(data []byte) error {
	var keyed map[string]Chunk
	if err := json.Unmarshal(data, &keyed); err != nil {
		return err
	}
	if len(keyed) != ChunkCount {
		return fmt.Errorf("expected %d chunks, got %d", ChunkCount, len(keyed))
	}
	for i := range s.Chunks {
		c, ok := keyed[chunkKey(i)]
		if !ok {
			return fmt.Errorf("missing chunk: %q", chunkKey(i))
		}
		s.Chunks[i] = c
	}
	return nil
}

func chunkKey(i int) string {
	return fmt.Sprintf("chunk%d", i+1)
}

// An Architect turns a feature analysis into a storyboard of video chunks.
type Architect struct {
	logger *slog.Logger
	model  Model
}

// NewArchitect creates an Architect backed by m.
func NewArchitect(logger *slog.Logger, m Model) *Architect {
	return &Architect{logger: logger, model: m}
}

// GenerateStoryboard asks the model for exactly ChunkCount chunks grounded
// on the feature analysis.
func (a *Architect) GenerateStoryboard(ctx context.Context, fa *FeatureAnalysis) (*Storyboard, error) {
	analysisJSON, err := json.MarshalIndent(fa, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling feature analysis: %w", err)
	}

	prompt, err := storyboardPrompt.Format(map[string]any{
		"feature_analysis_json": string(analysisJSON),
		"user_prompt":           storyboardRequest,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting storyboard prompt: %w", err)
	}

	raw, err := generate(ctx, a.model, prompt)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("raw model output", "stage", "storyboard", "output", raw)

	var s Storyboard
	if err := DecodeObject(raw, &s); err != nil {
		return nil, err
	}

	a.logger.Info("storyboard complete", "chunks", len(s.Chunks))
	return &s, nil
}
