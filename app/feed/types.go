package feed

import (
	"time"
)

// Feed processing types

type Metadata struct {
	Title         string
	Link          string
	Description   string
	Language      string
	LastBuildDate *time.Time
}

// Article is the canonical record produced from one feed item. All text
// fields are entity-decoded and tag-stripped. Slug is derived from Link
// and is stable across re-fetches, which makes it usable as an upsert key.
type Article struct {
	Title       string
	Link        string
	Description string
	Content     string
	PublishedAt time.Time
	GUID        string
	Author      string
	Categories  []string
	ImageURL    string
	Slug        string
}

type HreflangLink struct {
	Lang string
	URL  string
}

type InternalLink struct {
	Text string
	Href string
	Type string
}

// EnrichedArticle is an Article plus real-estate metadata derived purely
// from its text content. The embedded Article is never mutated.
type EnrichedArticle struct {
	Article

	IsRealEstateRelated  bool
	RelatedNeighborhoods []string
	CanonicalURL         string
	HreflangLinks        []HreflangLink
	InternalLinks        []InternalLink
	SEOKeywords          []string
	SEOTitle             string
	SEODescription       string
	Analysis             string
	AnalysisGenerated    bool
}

// Result is what one feed load produces. A failed fetch or parse yields a
// Result with zero articles and placeholder metadata, never an error.
type Result struct {
	Metadata Metadata
	Articles []EnrichedArticle
}
