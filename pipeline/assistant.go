package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// An Assistant runs the interactive session: it reads user input, feeds it
// through the processor and offers to save each result.
type Assistant struct {
	logger    *slog.Logger
	processor Processor
	prompter  Prompter
	writer    ResultWriter
	out       io.Writer
}

// NewAssistant creates an Assistant that writes user-facing output to out.
func NewAssistant(logger *slog.Logger, p Processor, pr Prompter, w ResultWriter, out io.Writer) *Assistant {
	return &Assistant{logger: logger, processor: p, prompter: pr, writer: w, out: out}
}

// Run loops reading input until the user quits or ends the stream. Each
// processed result can be saved to its own file and a session summary is
// written on exit when at least one input was processed.
func (a *Assistant) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "storycut video concept assistant")
	fmt.Fprintln(a.out, "Type 'quit' or 'exit' to stop.")

	var records []Record
	n := 0
	for {
		input, err := a.prompter.Prompt("input> ")
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Fprintln(a.out, "Goodbye.")
			return a.writeSummary(records)
		case "":
			fmt.Fprintln(a.out, "Please enter some text.")
			continue
		}

		n++
		result, err := a.processor.ProcessInput(ctx, input)
		if err != nil {
			a.logger.Error("processing input", "err", err)
			fmt.Fprintf(a.out, "Could not process input: %v\n", err)
			continue
		}
		records = append(records, Record{Input: input, Result: result})
		a.report(result)

		if err := a.offerSave(n, result); err != nil {
			return err
		}
	}
	return a.writeSummary(records)
}

func (a *Assistant) report(r *Result) {
	fmt.Fprintf(a.out, "Workflow: %s\n", r.Workflow)
	fmt.Fprintf(a.out, "Classification: %s\n", r.Classification)
	if r.Workflow == WorkflowFeature {
		fmt.Fprintf(a.out, "Feature analysis: %d value propositions, %d story arcs\n",
			len(r.Analysis.ConceptAnalysis.CoreValuePropositions),
			len(r.Analysis.NarrativeDesign.StoryArcs),
		)
		fmt.Fprintf(a.out, "Storyboard: %d chunks\n", len(r.Storyboard.Chunks))
	}
}

func (a *Assistant) offerSave(n int, r *Result) error {
	answer, err := a.prompter.Prompt("save result to file? (y/n)> ")
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		return nil
	}

	name := fmt.Sprintf("workflow_result_%d.json", n)
	if err := a.writer.WriteResult(name, r); err != nil {
		return fmt.Errorf("saving result: %w", err)
	}
	fmt.Fprintf(a.out, "Result saved to: %s\n", name)
	return nil
}

func (a *Assistant) writeSummary(records []Record) error {
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No inputs were processed.")
		return nil
	}

	if err := a.writer.WriteResult("all_workflow_results.json", records); err != nil {
		return fmt.Errorf("saving summary: %w", err)
	}

	fmt.Fprintf(a.out, "Processed %d inputs. All results saved to: all_workflow_results.json\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(a.out, "Input %d: %s -> %s (%s)\n",
			i+1, truncate(rec.Input, 50), rec.Result.Workflow, rec.Result.Classification)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
