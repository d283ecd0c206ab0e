package pipeline_test

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amlane/storycut/pipeline"
	"github.com/amlane/storycut/pipeline/pipelinefakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

func textResponse(content string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: content},
		},
	}
}

var _ = Describe("Classifier", func() {
	var (
		logger    *slog.Logger
		logOutput *gbytes.Buffer
		m         *pipelinefakes.FakeModel
		c         *pipeline.Classifier
	)

	BeforeEach(func() {
		logOutput = gbytes.NewBuffer()
		logger = slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: slog.LevelDebug}))

		m = &pipelinefakes.FakeModel{}
		m.GenerateContentReturns(textResponse(`{"classification": "General Conversation"}`), nil)
		c = pipeline.NewClassifier(logger, m)
	})

	It("sends the user input to the model with the classifier instructions", func() {
		_, err := c.Classify(context.Background(), "hi there, how are you?")
		Expect(err).ToNot(HaveOccurred())

		Expect(m.GenerateContentCallCount()).To(Equal(1))
		_, msgs, _ := m.GenerateContentArgsForCall(0)
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].Role).To(Equal(schema.ChatMessageTypeHuman))

		prompt := msgs[0].Parts[0].(llms.TextContent).Text
		Expect(prompt).To(ContainSubstring("AI Input Classifier"))
		Expect(prompt).To(ContainSubstring("hi there, how are you?"))
	})

	It("calls the model at a low temperature", func() {
		_, err := c.Classify(context.Background(), "hi")
		Expect(err).ToNot(HaveOccurred())

		_, _, opts := m.GenerateContentArgsForCall(0)
		co := &llms.CallOptions{}
		for _, o := range opts {
			o(co)
		}
		Expect(co.Temperature).To(BeNumerically("~", 0.2, 0.001))
	})

	It("classifies small talk as conversation", func() {
		cl, err := c.Classify(context.Background(), "hi")
		Expect(err).ToNot(HaveOccurred())
		Expect(cl).To(Equal(pipeline.ClassConversation))
	})

	It("logs the raw model output", func() {
		_, err := c.Classify(context.Background(), "hi")
		Expect(err).ToNot(HaveOccurred())
		Expect(logOutput).To(gbytes.Say(`raw model output.*classify`))
	})

	Context("when the model wraps its answer in a fenced block", func() {
		BeforeEach(func() {
			m.GenerateContentReturns(textResponse(
				"```json\n{\"classification\": \"Feature Description\"}\n```",
			), nil)
		})
		It("recovers the classification", func() {
			cl, err := c.Classify(context.Background(), "a drone flight over a misty fjord at dawn")
			Expect(err).ToNot(HaveOccurred())
			Expect(cl).To(Equal(pipeline.ClassFeature))
		})
	})

	Context("when the model invents a category", func() {
		BeforeEach(func() {
			m.GenerateContentReturns(textResponse(`{"classification": "Technical Question"}`), nil)
		})
		It("errors", func() {
			_, err := c.Classify(context.Background(), "hi")
			Expect(err).To(MatchError(`unknown classification: "Technical Question"`))
		})
	})

	Context("when the model output cannot be coerced into JSON", func() {
		BeforeEach(func() {
			m.GenerateContentReturns(textResponse("I'd rather chat about the weather."), nil)
		})
		It("errors", func() {
			_, err := c.Classify(context.Background(), "hi")
			Expect(err).To(MatchError(ContainSubstring("decoding model output")))
		})
	})

	Context("when the model returns no choices", func() {
		BeforeEach(func() {
			m.GenerateContentReturns(&llms.ContentResponse{}, nil)
		})
		It("errors", func() {
			_, err := c.Classify(context.Background(), "hi")
			Expect(err).To(MatchError("model returned no choices"))
		})
	})

	Context("when there is an error talking to the model", func() {
		BeforeEach(func() {
			m.GenerateContentReturns(nil, errors.New("some error"))
		})
		It("errors", func() {
			_, err := c.Classify(context.Background(), "hi")
			Expect(err).To(MatchError("some error"))
		})
	})
})
