package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// Encode writes doc as JSON. Non-ASCII names are written as is.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	return nil
}

// Decode reads a cache document. Entries without a network are dropped.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode cache: %w", err)
	}
	for name, entry := range doc {
		if entry == nil || entry.Network == nil {
			delete(doc, name)
		}
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// ReadFile reads a cache document from path.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// WriteFile writes doc to path, replacing the previous document.
func WriteFile(path string, doc Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Load returns the cache stored at path. An empty path, a missing file or an
// unreadable one all yield an empty document.
func Load(path string) Document {
	if path == "" {
		return Document{}
	}
	doc, err := ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("No cache file, starting empty")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("Ignoring unreadable cache")
		}
		return Document{}
	}
	return doc
}

// Save stores doc at path. It is a no-op when path is empty.
func Save(path string, doc Document) error {
	if path == "" {
		return nil
	}
	return WriteFile(path, doc)
}
