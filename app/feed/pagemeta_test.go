package feed

import (
	"context"
	"fmt"
	"testing"
)

type stubFetcher struct {
	body []byte
	err  error
}

func (s *stubFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	return s.body, s.err
}

func TestPageImageResolverOpenGraph(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="https://cdn.example.com/og.jpg">
		<meta name="twitter:image" content="https://cdn.example.com/tw.jpg">
	</head><body><img src="/big.jpg" width="1200"></body></html>`

	resolver := NewPageImageResolver(&stubFetcher{body: []byte(html)})
	result := resolver.Run(context.Background(), "https://karasugundem.com/haber/x")

	if result != "https://cdn.example.com/og.jpg" {
		t.Errorf("Expected og:image to win, got: %s", result)
	}
}

func TestPageImageResolverTwitterFallback(t *testing.T) {
	html := `<html><head>
		<meta name="twitter:image" content="https://cdn.example.com/tw.jpg">
	</head><body></body></html>`

	resolver := NewPageImageResolver(&stubFetcher{body: []byte(html)})
	result := resolver.Run(context.Background(), "https://karasugundem.com/haber/x")

	if result != "https://cdn.example.com/tw.jpg" {
		t.Errorf("Expected twitter:image fallback, got: %s", result)
	}
}

func TestPageImageResolverLargeImgHeuristic(t *testing.T) {
	html := `<html><body>
		<img src="/icon.png" width="32" height="32">
		<img src="/hero.jpg" width="1200" height="630">
	</body></html>`

	resolver := NewPageImageResolver(&stubFetcher{body: []byte(html)})
	result := resolver.Run(context.Background(), "https://karasugundem.com/haber/x")

	if result != "https://karasugundem.com/hero.jpg" {
		t.Errorf("Expected large image picked over icon, got: %s", result)
	}
}

func TestPageImageResolverFetchFailure(t *testing.T) {
	resolver := NewPageImageResolver(&stubFetcher{err: fmt.Errorf("connection refused")})
	result := resolver.Run(context.Background(), "https://karasugundem.com/haber/x")

	if result != "" {
		t.Errorf("Expected empty result on fetch failure, got: %s", result)
	}
}

func TestPageImageResolverNoUsableImage(t *testing.T) {
	html := `<html><body><img src="/pixel.gif" width="1" height="1"></body></html>`

	resolver := NewPageImageResolver(&stubFetcher{body: []byte(html)})
	result := resolver.Run(context.Background(), "https://karasugundem.com/haber/x")

	if result != "" {
		t.Errorf("Expected empty result, got: %s", result)
	}
}
