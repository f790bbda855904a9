// Package source loads raw provider export documents from the local
// filesystem or a provider HTTP endpoint.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/baikal/vitality/internal/collector"
)

// Source supplies a parsed export document.
type Source interface {
	// Name describes where the export comes from, for report metadata.
	Name() string

	// Fetch loads and parses the export. The context carries the deadline.
	Fetch(ctx context.Context) (*collector.Export, error)
}

// ForInput returns the right Source for an input string: HTTP(S) URLs get
// an HTTPSource, everything else is treated as a file path.
func ForInput(input string) Source {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return NewHTTPSource(input)
	}
	return &FileSource{Path: input}
}

// FileSource reads an export document from disk.
// YAML is selected by the .yaml/.yml extension, everything else parses as JSON.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return s.Path }

func (s *FileSource) Fetch(ctx context.Context) (*collector.Export, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read export %s: %w", s.Path, err)
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		return collector.ParseYAML(data)
	default:
		return collector.ParseJSON(data)
	}
}

// HTTPSource fetches an export document from a provider endpoint.
// The response body is expected to be JSON.
type HTTPSource struct {
	URL    string
	client *resty.Client
}

// NewHTTPSource creates an HTTPSource with a default client.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		client: resty.New().SetRetryCount(2),
	}
}

func (s *HTTPSource) Name() string { return s.URL }

func (s *HTTPSource) Fetch(ctx context.Context) (*collector.Export, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch export %s: %w", s.URL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch export %s: status %s", s.URL, resp.Status())
	}
	return collector.ParseJSON(resp.Body())
}
