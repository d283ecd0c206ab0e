package pipeline

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedObject = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	anyObject    = regexp.MustCompile(`(?s)\{.*\}`)
	flatObject   = regexp.MustCompile(`(?s)(\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\})`)
)

// unescaper rewrites literal escape sequences that models emit when they
// double-encode their JSON output. Order matters: backslash pairs are
// collapsed after the two-character sequences are handled.
var unescaper = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\"`, `"`,
	`\\`, `\`,
	`\'`, "'",
)

// CleanResponse extracts the most plausible JSON object from free-form model
// output. It prefers a ```json fenced block, then strips stray fence markers
// and falls back to the outermost brace-delimited span.
func CleanResponse(text string) string {
	if text == "" {
		return ""
	}
	if m := fencedObject.FindStringSubmatch(text); m != nil {
		text = m[1]
	} else {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
		if m := anyObject.FindString(text); m != "" {
			text = m
		}
	}
	return strings.TrimSpace(text)
}

// DecodeObject coerces free-form model output into v. It cleans the text,
// attempts a decode, and then walks a chain of progressively more aggressive
// recovery steps against the raw output. The first decode error is returned
// when every step fails.
func DecodeObject(raw string, v any) error {
	cleaned := CleanResponse(raw)

	firstErr := json.Unmarshal([]byte(cleaned), v)
	if firstErr == nil {
		return nil
	}
	if json.Unmarshal([]byte(unescaper.Replace(cleaned)), v) == nil {
		return nil
	}

	if m := fencedObject.FindStringSubmatch(raw); m != nil {
		if decodeCandidate(m[1], v) {
			return nil
		}
	}
	if m := flatObject.FindStringSubmatch(raw); m != nil {
		if decodeCandidate(m[1], v) {
			return nil
		}
	}

	return fmt.Errorf("decoding model output: %w", firstErr)
}

func decodeCandidate(s string, v any) bool {
	if json.Unmarshal([]byte(s), v) == nil {
		return true
	}
	return json.Unmarshal([]byte(unescaper.Replace(s)), v) == nil
}
