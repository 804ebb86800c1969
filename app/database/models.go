package database

import (
	"time"
)

// Article represents a news_articles row as read back from the database.
type Article struct {
	ID                      string
	Title                   string
	Slug                    string
	GUID                    string
	SourceURL               string
	SourceDomain            string
	CanonicalURL            string
	ImageURL                string
	Author                  string
	OriginalSummary         string
	Content                 string
	Categories              []string
	Analysis                string
	AnalysisGenerated       bool
	IsRealEstate            bool
	RelatedNeighborhoods    []string
	RelatedListings         []string
	SEOTitle                string
	SEODescription          string
	SEOKeywords             []string
	Published               bool
	Featured                bool
	PublishedAt             *time.Time
	ContentExtractionStatus string
	ContentExtractedAt      *time.Time
	ContentExtractionError  string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
