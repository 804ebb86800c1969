package api

import (
	"time"

	"github.com/karasuemlak/gundem-feed/app/database"
)

type articleResponse struct {
	Slug                 string     `json:"slug"`
	Title                string     `json:"title"`
	Summary              string     `json:"summary"`
	Content              string     `json:"content,omitempty"`
	ImageURL             string     `json:"image_url,omitempty"`
	Author               string     `json:"author"`
	SourceURL            string     `json:"source_url"`
	SourceDomain         string     `json:"source_domain"`
	CanonicalURL         string     `json:"canonical_url"`
	Categories           []string   `json:"categories,omitempty"`
	IsRealEstate         bool       `json:"is_real_estate"`
	Analysis             string     `json:"emlak_analysis,omitempty"`
	RelatedNeighborhoods []string   `json:"related_neighborhoods,omitempty"`
	SEOTitle             string     `json:"seo_title"`
	SEODescription       string     `json:"seo_description"`
	SEOKeywords          []string   `json:"seo_keywords,omitempty"`
	Featured             bool       `json:"featured"`
	PublishedAt          *time.Time `json:"published_at,omitempty"`
}

func toArticleResponse(article database.Article) articleResponse {
	return articleResponse{
		Slug:                 article.Slug,
		Title:                article.Title,
		Summary:              article.OriginalSummary,
		Content:              article.Content,
		ImageURL:             article.ImageURL,
		Author:               article.Author,
		SourceURL:            article.SourceURL,
		SourceDomain:         article.SourceDomain,
		CanonicalURL:         article.CanonicalURL,
		Categories:           article.Categories,
		IsRealEstate:         article.IsRealEstate,
		Analysis:             article.Analysis,
		RelatedNeighborhoods: article.RelatedNeighborhoods,
		SEOTitle:             article.SEOTitle,
		SEODescription:       article.SEODescription,
		SEOKeywords:          article.SEOKeywords,
		Featured:             article.Featured,
		PublishedAt:          article.PublishedAt,
	}
}
