package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/subway-export/model"
)

// fetcher loads the network model from a URL or a local file.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
}

// newFetcher creates a new fetcher for network models
func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// fetch returns the raw bytes behind urlOrPath.
// Supports both HTTP URLs and local file paths.
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("no network model given")
	}

	// Check if it's a local file path
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	// HTTP fetch
	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

// fetchModel fetches and decodes a network model.
func (f *fetcher) fetchModel(urlOrPath string) (*model.Network, error) {
	data, err := f.fetch(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("network model: %w", err)
	}
	return model.Load(bytes.NewReader(data))
}
