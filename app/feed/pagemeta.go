package feed

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves a URL's body. Satisfied by fetch.Client.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

var largeDimensionRe = regexp.MustCompile(`^\d{3,}`)

// PageImageResolver is the expensive last stage of the image cascade: it
// fetches the article page itself and scans the markup for an Open Graph
// image, a Twitter Card image, or failing both, the first <img> tag whose
// width or height attribute is three digits or more (a heuristic for
// "meaningful" images over tracking pixels and icons).
//
// Any failure degrades to "" and a debug log line; a slow or broken
// article page must never fail the feed batch.
type PageImageResolver struct {
	fetcher Fetcher
}

func NewPageImageResolver(fetcher Fetcher) *PageImageResolver {
	return &PageImageResolver{fetcher: fetcher}
}

func (r *PageImageResolver) Run(ctx context.Context, pageURL string) string {
	if pageURL == "" {
		return ""
	}

	data, err := r.fetcher.Get(ctx, pageURL)
	if err != nil {
		slog.Debug("Page image fetch failed", "url", pageURL, "error", err)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		slog.Debug("Page image parse failed", "url", pageURL, "error", err)
		return ""
	}

	if content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
		if u := resolveImageURL(content, pageURL); u != "" {
			return u
		}
	}

	for _, selector := range []string{`meta[name="twitter:image"]`, `meta[property="twitter:image"]`} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if u := resolveImageURL(content, pageURL); u != "" {
				return u
			}
		}
	}

	var found string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		width, _ := sel.Attr("width")
		height, _ := sel.Attr("height")
		if !largeDimensionRe.MatchString(width) && !largeDimensionRe.MatchString(height) {
			return true
		}
		src, ok := sel.Attr("src")
		if !ok {
			return true
		}
		if u := resolveImageURL(src, pageURL); u != "" {
			found = u
			return false
		}
		return true
	})

	return found
}
