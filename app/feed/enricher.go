package feed

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ArticlePathPrefix is where synthesized canonical URLs live on the site.
const ArticlePathPrefix = "/haber/"

// NeighborhoodPathPrefix is where internal link suggestions point.
const NeighborhoodPathPrefix = "/karasu/"

// Enricher attaches real-estate metadata to a parsed article as a pure
// function of its text content. Classification is plain substring
// matching on Turkish-lowercased text; it has no word-boundary awareness
// and can false-positive on substrings inside unrelated words, which is
// an accepted limitation of the keyword heuristic.
type Enricher struct {
	siteBaseURL   string
	siteHost      string
	keywords      []string
	neighborhoods []string
	seoTerms      []string
	lower         cases.Caser
}

// NewEnricher builds an enricher for one site. Passing nil for either
// keyword list selects the built-in defaults. Lowercasing uses Turkish
// casing rules so that dotted/dotless I fold correctly.
func NewEnricher(siteBaseURL string, keywords, neighborhoods []string) *Enricher {
	if len(keywords) == 0 {
		keywords = DefaultRealEstateKeywords
	}
	if len(neighborhoods) == 0 {
		neighborhoods = DefaultNeighborhoods
	}

	siteBaseURL = strings.TrimRight(siteBaseURL, "/")

	e := &Enricher{
		siteBaseURL:   siteBaseURL,
		keywords:      keywords,
		neighborhoods: neighborhoods,
		seoTerms:      defaultSEOTerms,
		lower:         cases.Lower(language.Turkish),
	}

	if u, err := url.Parse(siteBaseURL); err == nil {
		e.siteHost = stripWWW(u.Host)
	}

	return e
}

func (e *Enricher) Run(article Article) EnrichedArticle {
	text := e.lower.String(article.Title + " " + article.Description + " " + article.Content)

	enriched := EnrichedArticle{
		Article:              article,
		IsRealEstateRelated:  e.isRealEstateRelated(text),
		RelatedNeighborhoods: e.extractNeighborhoods(text),
		CanonicalURL:         e.canonicalURL(article),
	}

	enriched.HreflangLinks = []HreflangLink{
		{Lang: "tr", URL: article.Link},
		{Lang: "x-default", URL: article.Link},
	}

	for _, neighborhood := range enriched.RelatedNeighborhoods {
		enriched.InternalLinks = append(enriched.InternalLinks, InternalLink{
			Text: neighborhood,
			Href: NeighborhoodPathPrefix + asciiSlug(neighborhood),
			Type: "neighborhood",
		})
	}

	enriched.SEOKeywords = append(enriched.SEOKeywords, enriched.RelatedNeighborhoods...)
	enriched.SEOKeywords = append(enriched.SEOKeywords, e.seoTerms...)

	enriched.SEOTitle = seoTitle(article.Title)
	enriched.SEODescription = seoDescription(article.Description)

	if enriched.IsRealEstateRelated {
		enriched.Analysis = GenerateAnalysis(article.Title, enriched.RelatedNeighborhoods)
		enriched.AnalysisGenerated = enriched.Analysis != ""
	}

	return enriched
}

func (e *Enricher) isRealEstateRelated(text string) bool {
	for _, keyword := range e.keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// extractNeighborhoods returns matches in keyword-list order, not article
// order. The list itself is unique, so no extra dedup pass is needed.
func (e *Enricher) extractNeighborhoods(text string) []string {
	var matched []string
	for _, neighborhood := range e.neighborhoods {
		if strings.Contains(text, neighborhood) {
			matched = append(matched, neighborhood)
		}
	}
	return matched
}

// canonicalURL keeps an own-domain link verbatim; anything external is
// rewritten to a same-site URL under the article path prefix so search
// engines attribute the content to the site.
func (e *Enricher) canonicalURL(article Article) string {
	if e.siteHost != "" {
		if u, err := url.Parse(article.Link); err == nil && stripWWW(u.Host) == e.siteHost {
			return article.Link
		}
	}
	return e.siteBaseURL + ArticlePathPrefix + article.Slug
}

func stripWWW(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

var turkishASCII = strings.NewReplacer(
	"ç", "c",
	"ğ", "g",
	"ı", "i",
	"ö", "o",
	"ş", "s",
	"ü", "u",
	" ", "-",
)

// asciiSlug folds a lowercase Turkish token into a URL path segment.
func asciiSlug(s string) string {
	return turkishASCII.Replace(s)
}
