package feed

import (
	"bytes"
	"fmt"
	"log/slog"

	readability "github.com/go-shiori/go-readability"
)

// ContentExtractor pulls the readable article body out of a fetched HTML
// page. Used for stored articles whose feed only carried a summary; the
// result is plain text, matching the rest of the pipeline's cleaned
// fields.
type ContentExtractor struct{}

func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

func (e *ContentExtractor) Run(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	text := DecodeEntities(StripTags(article.TextContent))
	if text == "" {
		text = CleanText(article.Content)
	}
	if text == "" {
		return "", fmt.Errorf("no content extracted from HTML data")
	}

	slog.Debug("Content extracted successfully",
		"title", article.Title,
		"content_length", len(text))

	return text, nil
}
