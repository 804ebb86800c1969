package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/karasuemlak/gundem-feed/app/config"
	"github.com/karasuemlak/gundem-feed/app/database"
	"github.com/karasuemlak/gundem-feed/app/feed"
)

// SyncSourceTask runs the full ingestion pipeline for one source: load
// and enrich the feed, then upsert every article keyed by slug. A feed
// that comes back empty (network down, malformed XML) is a normal
// outcome and completes the task successfully; only repository failures
// surface as errors so the scheduler can retry them.
type SyncSourceTask struct {
	Task
	Source      *config.Source
	feedService *feed.Service
	articleRepo database.ArticleRepository
}

func NewSyncSourceTask(source *config.Source, feedService *feed.Service, articleRepo database.ArticleRepository) *SyncSourceTask {
	return &SyncSourceTask{
		Task:        NewTask(TaskTypeSyncSource, source.Name),
		Source:      source,
		feedService: feedService,
		articleRepo: articleRepo,
	}
}

func (t *SyncSourceTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !t.Source.Settings.Enabled {
		slog.Debug("Source disabled, skipping", "source", t.SourceName)
		return nil
	}

	result := t.feedService.Load(ctx, feed.Source{
		Name:            t.Source.Name,
		URL:             t.Source.URL,
		SiteBaseURL:     t.Source.SiteBaseURL,
		Timeout:         time.Duration(t.Source.Settings.Timeout) * time.Second,
		MaxItems:        t.Source.Settings.MaxItems,
		PageFetchBudget: t.Source.Settings.PageFetchBudget,
		Keywords:        t.Source.Keywords.RealEstate,
		Neighborhoods:   t.Source.Keywords.Neighborhoods,
	})

	newCount := 0
	updatedCount := 0
	relevantCount := 0

	for _, article := range result.Articles {
		exists, err := t.articleRepo.SlugExists(article.Slug)
		if err != nil {
			return fmt.Errorf("failed to check slug %q: %w", article.Slug, err)
		}

		if err := t.articleRepo.UpsertArticle(t.buildRecord(article)); err != nil {
			return fmt.Errorf("failed to upsert article %q: %w", article.Slug, err)
		}

		if exists {
			updatedCount++
		} else {
			newCount++
		}
		if article.IsRealEstateRelated {
			relevantCount++
		}
	}

	slog.Info("Task completed",
		"type", "SyncSource",
		"source", t.SourceName,
		"duration", t.GetDuration(),
		"total", len(result.Articles),
		"new", newCount,
		"updated", updatedCount,
		"relevant", relevantCount)

	return nil
}

func (t *SyncSourceTask) buildRecord(article feed.EnrichedArticle) database.ArticleRecord {
	return database.ArticleRecord{
		Title:                article.Title,
		Slug:                 article.Slug,
		GUID:                 article.GUID,
		SourceURL:            article.Link,
		SourceDomain:         hostOf(article.Link),
		CanonicalURL:         article.CanonicalURL,
		ImageURL:             article.ImageURL,
		Author:               article.Author,
		OriginalSummary:      article.Description,
		Content:              article.Content,
		Categories:           article.Categories,
		Analysis:             article.Analysis,
		AnalysisGenerated:    article.AnalysisGenerated,
		IsRealEstate:         article.IsRealEstateRelated,
		RelatedNeighborhoods: article.RelatedNeighborhoods,
		SEOTitle:             article.SEOTitle,
		SEODescription:       article.SEODescription,
		SEOKeywords:          article.SEOKeywords,
		Published:            t.Source.Settings.AutoPublish && article.IsRealEstateRelated,
		PublishedAt:          article.PublishedAt,
	}
}

func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Host
}
