package pipeline_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amlane/storycut/pipeline"
	"github.com/amlane/storycut/pipeline/pipelinefakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

func storyboardJSON(chunks int) string {
	parts := make([]string, 0, chunks)
	for i := 1; i <= chunks; i++ {
		parts = append(parts, fmt.Sprintf(
			`"chunk%d": {"environment": "environment %d", "characters": ["character %d"], "activity": "activity %d", "camera_direction": "dolly in", "audio_visual_sync": "rising strings"}`,
			i, i, i, i,
		))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

var _ = Describe("Storyboard", func() {
	It("round-trips through the chunk-keyed wire shape", func() {
		var s pipeline.Storyboard
		err := json.Unmarshal([]byte(storyboardJSON(8)), &s)
		Expect(err).ToNot(HaveOccurred())

		Expect(s.Chunks[0].Environment).To(Equal("environment 1"))
		Expect(s.Chunks[7].Characters).To(ConsistOf("character 8"))

		b, err := json.Marshal(s)
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(MatchJSON(storyboardJSON(8)))
	})

	Context("when a chunk is missing", func() {
		It("errors", func() {
			var s pipeline.Storyboard
			err := json.Unmarshal([]byte(storyboardJSON(7)), &s)
			Expect(err).To(MatchError(ContainSubstring("expected 8 chunks, got 7")))
		})
	})

	Context("when the chunks are misnumbered", func() {
		It("errors", func() {
			doc := strings.Replace(storyboardJSON(8), `"chunk8"`, `"chunk9"`, 1)
			var s pipeline.Storyboard
			err := json.Unmarshal([]byte(doc), &s)
			Expect(err).To(MatchError(ContainSubstring(`missing chunk: "chunk8"`)))
		})
	})
})

var _ = Describe("Architect", func() {
	var (
		logger    *slog.Logger
		logOutput *gbytes.Buffer
		m         *pipelinefakes.FakeModel
		arch      *pipeline.Architect
		fa        *pipeline.FeatureAnalysis
	)

	BeforeEach(func() {
		logOutput = gbytes.NewBuffer()
		logger = slog.New(slog.NewTextHandler(logOutput, nil))

		m = &pipelinefakes.FakeModel{}
		m.GenerateContentReturns(textResponse(storyboardJSON(8)), nil)
		arch = pipeline.NewArchitect(logger, m)

		fa = &pipeline.FeatureAnalysis{}
		fa.ConceptAnalysis.UseCases = []string{"travel vlogging"}
		fa.NarrativeDesign.StoryArcs = []string{"problem to mastery"}
	})

	It("embeds the feature analysis and the chunk requirements in the prompt", func() {
		_, err := arch.GenerateStoryboard(context.Background(), fa)
		Expect(err).ToNot(HaveOccurred())

		Expect(m.GenerateContentCallCount()).To(Equal(1))
		_, msgs, _ := m.GenerateContentArgsForCall(0)
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].Role).To(Equal(schema.ChatMessageTypeHuman))

		prompt := msgs[0].Parts[0].(llms.TextContent).Text
		Expect(prompt).To(ContainSubstring("AI Video Story Architect"))
		Expect(prompt).To(ContainSubstring(`"travel vlogging"`))
		Expect(prompt).To(ContainSubstring("Generate 8 unique video chunks"))
	})

	It("returns the eight chunks in order", func() {
		s, err := arch.GenerateStoryboard(context.Background(), fa)
		Expect(err).ToNot(HaveOccurred())

		Expect(s.Chunks).To(HaveLen(8))
		for i, c := range s.Chunks {
			Expect(c.Environment).To(Equal(fmt.Sprintf("environment %d", i+1)))
		}
	})

	It("logs the completed storyboard", func() {
		_, err := arch.GenerateStoryboard(context.Background(), fa)
		Expect(err).ToNot(HaveOccurred())
		Expect(logOutput).To(gbytes.Say(`storyboard complete.*chunks=8`))
	})

	Context("when the model returns too few chunks", func() {
		BeforeEach(func() {
			m.GenerateContentReturns(textResponse(storyboardJSON(5)), nil)
		})
		It("errors", func() {
			_, err := arch.GenerateStoryboard(context.Background(), fa)
			Expect(err).To(HaveOccurred())
		})
	})
})
