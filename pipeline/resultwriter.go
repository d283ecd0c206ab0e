package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// A JSONResultWriter writes results as indented JSON documents.
type JSONResultWriter struct {
	logger *slog.Logger
	dir    string
}

// NewJSONResultWriter creates a JSONResultWriter.
// Documents are written relative to the directory specified with dir.
func NewJSONResultWriter(logger *slog.Logger, dir string) *JSONResultWriter {
	return &JSONResultWriter{logger: logger, dir: dir}
}

// WriteResult marshals v as indented JSON and writes it to the path
// specified. Intermediate directories for path are created if they don't
// already exist. It errors if path is not local or if there is an IO error.
func (rw *JSONResultWriter) WriteResult(path string, v any) error {
	rw.logger.Info("writing result", "path", path)
	if !filepath.IsLocal(path) {
		return fmt.Errorf("path is not a local path: %q", path)
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	f := filepath.Join(rw.dir, path)
	if err := os.MkdirAll(filepath.Dir(f), 0700); err != nil {
		return err
	}

	if err := os.WriteFile(f, b, 0600); err != nil {
		return err
	}

	return nil
}
