package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/subway-export/mapsme"
)

type responseBuilder struct {
	indent string
}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for serializing exports
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// Indented makes the builder pretty-print its output.
func (rb *responseBuilder) Indented() *responseBuilder {
	rb.indent = "  "
	return rb
}

// BuildJSON serializes an export document to JSON. Names are written
// unescaped so non-Latin scripts stay readable.
func (rb *responseBuilder) BuildJSON(doc *mapsme.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := rb.Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes doc to w.
func (rb *responseBuilder) Write(w io.Writer, doc *mapsme.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if rb.indent != "" {
		enc.SetIndent("", rb.indent)
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// WriteFile serializes doc to path, or to stdout when path is empty or "-".
func (rb *responseBuilder) WriteFile(path string, doc *mapsme.Document) error {
	if path == "" || path == "-" {
		return rb.Write(os.Stdout, doc)
	}
	data, err := rb.BuildJSON(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
