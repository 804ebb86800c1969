package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultPageFetchBudget caps how many leading feed items may fall
	// back to fetching the article page for an image. The budget is
	// positional: only the first N items in feed order are eligible,
	// which bounds outbound requests per feed load.
	DefaultPageFetchBudget = 5

	parsePreviewLen = 200
)

// Source describes one feed to load. Decoupled from the configuration
// package so the core stays importable on its own.
type Source struct {
	Name            string
	URL             string
	SiteBaseURL     string
	Timeout         time.Duration
	MaxItems        int
	PageFetchBudget int
	Keywords        []string
	Neighborhoods   []string
}

// Service runs the full pipeline for one feed: fetch, normalize, resolve
// missing images within budget, enrich.
type Service struct {
	fetcher    Fetcher
	parser     *Parser
	pageImages *PageImageResolver
}

func NewService(fetcher Fetcher) *Service {
	return &Service{
		fetcher:    fetcher,
		parser:     NewParser(),
		pageImages: NewPageImageResolver(fetcher),
	}
}

// Load never returns an error: any fetch or parse failure is logged and
// degrades to an empty Result with placeholder channel metadata. Callers
// must treat zero articles as a normal outcome (the news section is
// simply empty or stale), not a crash signal.
func (s *Service) Load(ctx context.Context, source Source) *Result {
	if source.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, source.Timeout)
		defer cancel()
	}

	data, err := s.fetcher.Get(ctx, source.URL)
	if err != nil {
		slog.Warn("Feed fetch failed", "source", source.Name, "url", source.URL, "error", err)
		return emptyResult(source)
	}

	metadata, articles, err := s.parser.Run(data)
	if err != nil {
		slog.Warn("Feed parse failed",
			"source", source.Name,
			"url", source.URL,
			"error", err,
			"payload_preview", preview(data))
		return emptyResult(source)
	}

	if source.MaxItems > 0 && len(articles) > source.MaxItems {
		articles = articles[:source.MaxItems]
	}

	s.resolveMissingImages(ctx, source, articles)

	enricher := NewEnricher(source.SiteBaseURL, source.Keywords, source.Neighborhoods)

	enriched := make([]EnrichedArticle, 0, len(articles))
	for _, article := range articles {
		enriched = append(enriched, enricher.Run(article))
	}

	return &Result{
		Metadata: *metadata,
		Articles: enriched,
	}
}

// resolveMissingImages fans out the page-fetch fallback for leading items
// whose cascade came up empty. Results land back at the item's own index,
// so output order always matches feed order.
func (s *Service) resolveMissingImages(ctx context.Context, source Source, articles []Article) {
	budget := source.PageFetchBudget
	if budget <= 0 {
		budget = DefaultPageFetchBudget
	}

	var wg sync.WaitGroup
	for i := range articles {
		if i >= budget {
			break
		}
		if articles[i].ImageURL != "" {
			continue
		}

		wg.Add(1)
		go func(article *Article) {
			defer wg.Done()
			article.ImageURL = s.pageImages.Run(ctx, article.Link)
		}(&articles[i])
	}
	wg.Wait()
}

func emptyResult(source Source) *Result {
	title := source.Name
	if title == "" {
		title = "Karasu Gündem"
	}
	return &Result{
		Metadata: Metadata{
			Title: title,
			Link:  source.URL,
		},
		Articles: []EnrichedArticle{},
	}
}

func preview(data []byte) string {
	if len(data) > parsePreviewLen {
		data = data[:parsePreviewLen]
	}
	return string(data)
}
