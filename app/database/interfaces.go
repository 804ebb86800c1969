package database

import (
	"time"
)

// ArticleRecord is the write-side shape handed to the repository by the
// ingestion tasks. Slug is the upsert key: re-importing the same feed
// updates rows in place rather than inserting duplicates.
type ArticleRecord struct {
	Title                string
	Slug                 string
	GUID                 string
	SourceURL            string
	SourceDomain         string
	CanonicalURL         string
	ImageURL             string
	Author               string
	OriginalSummary      string
	Content              string
	Categories           []string
	Analysis             string
	AnalysisGenerated    bool
	IsRealEstate         bool
	RelatedNeighborhoods []string
	SEOTitle             string
	SEODescription       string
	SEOKeywords          []string
	Published            bool
	PublishedAt          time.Time
}

// ArticleForExtraction identifies a stored article whose full body still
// needs to be fetched from the source page.
type ArticleForExtraction struct {
	ID        string
	SourceURL string
}

type ArticleRepository interface {
	UpsertArticle(record ArticleRecord) error
	SlugExists(slug string) (bool, error)

	GetArticleBySlug(slug string) (*Article, error)
	GetPublishedArticles(limit int) ([]Article, error)
	GetArticleCount() (int, error)
	GetArticleStats() (total, published, realEstate int, err error)

	GetArticlesForExtraction(limit int) ([]ArticleForExtraction, error)
	UpdateExtractedContent(articleID string, content string, extractedAt time.Time) error
	UpdateExtractionStatus(articleID string, status string, extractedAt time.Time, errorMsg string) error
}
