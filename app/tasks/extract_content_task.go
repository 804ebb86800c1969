package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/karasuemlak/gundem-feed/app/config"
	"github.com/karasuemlak/gundem-feed/app/database"
	"github.com/karasuemlak/gundem-feed/app/feed"
)

// ExtractContentTask backfills full article bodies for stored articles
// whose feed only carried a summary. Each article page is fetched and run
// through the readability extractor; failures are recorded per article
// and never abort the batch.
type ExtractContentTask struct {
	Task
	Source           *config.Source
	fetcher          feed.Fetcher
	contentExtractor *feed.ContentExtractor
	articleRepo      database.ArticleRepository
}

func NewExtractContentTask(source *config.Source, fetcher feed.Fetcher, contentExtractor *feed.ContentExtractor, articleRepo database.ArticleRepository) *ExtractContentTask {
	return &ExtractContentTask{
		Task:             NewTask(TaskTypeExtractContent, source.Name),
		Source:           source,
		fetcher:          fetcher,
		contentExtractor: contentExtractor,
		articleRepo:      articleRepo,
	}
}

func (t *ExtractContentTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !t.Source.Settings.ExtractContent {
		slog.Debug("Content extraction disabled for source", "source", t.SourceName)
		return nil
	}

	articles, err := t.articleRepo.GetArticlesForExtraction(t.Source.Settings.MaxItems)
	if err != nil {
		return fmt.Errorf("failed to get articles for content extraction: %w", err)
	}

	if len(articles) == 0 {
		slog.Debug("No articles need content extraction", "source", t.SourceName)
		return nil
	}

	successCount := 0
	errorCount := 0

	for _, article := range articles {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		extractCtx, cancel := context.WithTimeout(ctx, time.Duration(t.Source.Settings.Timeout)*time.Second)
		err := t.extractContentForArticle(extractCtx, article)
		cancel()

		if err != nil {
			slog.Error("Failed to extract content for article",
				"article_id", article.ID, "url", article.SourceURL, "error", err)
			errorCount++

			now := time.Now().UTC()
			if updateErr := t.articleRepo.UpdateExtractionStatus(article.ID, "failed", now, err.Error()); updateErr != nil {
				slog.Error("Failed to update content extraction status",
					"article_id", article.ID, "error", updateErr)
			}
		} else {
			successCount++
		}
	}

	slog.Info("Task completed",
		"type", "ExtractContent",
		"source", t.SourceName,
		"duration", t.GetDuration(),
		"success", successCount,
		"errors", errorCount)

	return nil
}

func (t *ExtractContentTask) extractContentForArticle(ctx context.Context, article database.ArticleForExtraction) error {
	if article.SourceURL == "" {
		return fmt.Errorf("article has no source URL")
	}

	data, err := t.fetcher.Get(ctx, article.SourceURL)
	if err != nil {
		return fmt.Errorf("failed to fetch article page: %w", err)
	}

	content, err := t.contentExtractor.Run(data)
	if err != nil {
		return fmt.Errorf("failed to extract content: %w", err)
	}

	if err := t.articleRepo.UpdateExtractedContent(article.ID, content, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to store extracted content: %w", err)
	}

	slog.Debug("Content extracted successfully",
		"article_id", article.ID, "url", article.SourceURL, "content_length", len(content))
	return nil
}
