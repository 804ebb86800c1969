package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ArticleRepositoryImpl handles database operations for news articles.
type ArticleRepositoryImpl struct {
	db *DB
}

var _ ArticleRepository = (*ArticleRepositoryImpl)(nil)

func NewArticleRepository(db *DB) *ArticleRepositoryImpl {
	return &ArticleRepositoryImpl{db: db}
}

// UpsertArticle inserts or updates an article keyed by slug. A second
// import of the same feed therefore updates rows in place; it never
// creates a duplicate. The published flag is ORed so a re-import can
// publish an article but never unpublish one.
func (r *ArticleRepositoryImpl) UpsertArticle(record ArticleRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO news_articles (
			id, title, slug, guid, source_url, source_domain, canonical_url,
			image_url, author, original_summary, content, categories,
			emlak_analysis, emlak_analysis_generated, is_real_estate,
			related_neighborhoods, seo_title, seo_description, seo_keywords,
			published, published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			guid = EXCLUDED.guid,
			source_url = EXCLUDED.source_url,
			source_domain = EXCLUDED.source_domain,
			canonical_url = EXCLUDED.canonical_url,
			image_url = CASE WHEN EXCLUDED.image_url <> '' THEN EXCLUDED.image_url ELSE news_articles.image_url END,
			author = EXCLUDED.author,
			original_summary = EXCLUDED.original_summary,
			content = CASE WHEN EXCLUDED.content <> '' THEN EXCLUDED.content ELSE news_articles.content END,
			categories = EXCLUDED.categories,
			emlak_analysis = EXCLUDED.emlak_analysis,
			emlak_analysis_generated = EXCLUDED.emlak_analysis_generated,
			is_real_estate = EXCLUDED.is_real_estate,
			related_neighborhoods = EXCLUDED.related_neighborhoods,
			seo_title = EXCLUDED.seo_title,
			seo_description = EXCLUDED.seo_description,
			seo_keywords = EXCLUDED.seo_keywords,
			published = news_articles.published OR EXCLUDED.published,
			updated_at = NOW()
	`, uuid.NewString(), record.Title, record.Slug, record.GUID, record.SourceURL,
		record.SourceDomain, record.CanonicalURL, record.ImageURL, record.Author,
		record.OriginalSummary, record.Content, pq.Array(record.Categories),
		record.Analysis, record.AnalysisGenerated, record.IsRealEstate,
		pq.Array(record.RelatedNeighborhoods), record.SEOTitle, record.SEODescription,
		pq.Array(record.SEOKeywords), record.Published, record.PublishedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert article: %w", err)
	}

	return nil
}

// SlugExists reports whether an article with the given slug is already
// stored.
func (r *ArticleRepositoryImpl) SlugExists(slug string) (bool, error) {
	var id string
	err := r.db.QueryRow(`SELECT id FROM news_articles WHERE slug = $1 LIMIT 1`, slug).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return true, nil
}

func (r *ArticleRepositoryImpl) GetArticleBySlug(slug string) (*Article, error) {
	row := r.db.QueryRow(articleSelect+` WHERE slug = $1`, slug)

	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}
	return article, nil
}

// GetPublishedArticles returns published articles, newest first.
func (r *ArticleRepositoryImpl) GetPublishedArticles(limit int) ([]Article, error) {
	rows, err := r.db.Query(articleSelect+`
		WHERE published = TRUE
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get published articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, *article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepositoryImpl) GetArticleCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM news_articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get article count: %w", err)
	}
	return count, nil
}

func (r *ArticleRepositoryImpl) GetArticleStats() (total, published, realEstate int, err error) {
	err = r.db.QueryRow(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN published THEN 1 ELSE 0 END), 0) AS published,
			COALESCE(SUM(CASE WHEN is_real_estate THEN 1 ELSE 0 END), 0) AS real_estate
		FROM news_articles
	`).Scan(&total, &published, &realEstate)

	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to get article stats: %w", err)
	}

	return total, published, realEstate, nil
}

// GetArticlesForExtraction returns stored articles that still lack a full
// body, oldest first so a backlog drains in publication order.
func (r *ArticleRepositoryImpl) GetArticlesForExtraction(limit int) ([]ArticleForExtraction, error) {
	rows, err := r.db.Query(`
		SELECT id, source_url
		FROM news_articles
		WHERE content = ''
		  AND content_extraction_status = 'pending'
		  AND source_url <> ''
		ORDER BY COALESCE(published_at, created_at) ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles for extraction: %w", err)
	}
	defer rows.Close()

	var articles []ArticleForExtraction
	for rows.Next() {
		var a ArticleForExtraction
		if err := rows.Scan(&a.ID, &a.SourceURL); err != nil {
			return nil, fmt.Errorf("failed to scan extraction row: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extraction rows: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepositoryImpl) UpdateExtractedContent(articleID string, content string, extractedAt time.Time) error {
	_, err := r.db.Exec(`
		UPDATE news_articles
		SET content = $2,
		    content_extraction_status = 'success',
		    content_extracted_at = $3,
		    content_extraction_error = '',
		    updated_at = NOW()
		WHERE id = $1
	`, articleID, content, extractedAt)

	if err != nil {
		return fmt.Errorf("failed to update extracted content: %w", err)
	}
	return nil
}

func (r *ArticleRepositoryImpl) UpdateExtractionStatus(articleID string, status string, extractedAt time.Time, errorMsg string) error {
	_, err := r.db.Exec(`
		UPDATE news_articles
		SET content_extraction_status = $2,
		    content_extracted_at = $3,
		    content_extraction_error = $4,
		    updated_at = NOW()
		WHERE id = $1
	`, articleID, status, extractedAt, errorMsg)

	if err != nil {
		return fmt.Errorf("failed to update extraction status: %w", err)
	}
	return nil
}

const articleSelect = `
	SELECT id, title, slug, guid, source_url, source_domain, canonical_url,
	       image_url, author, original_summary, content, categories,
	       emlak_analysis, emlak_analysis_generated, is_real_estate,
	       related_neighborhoods, related_listings, seo_title,
	       seo_description, seo_keywords, published, featured, published_at,
	       content_extraction_status, content_extracted_at,
	       content_extraction_error, created_at, updated_at
	FROM news_articles`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*Article, error) {
	var article Article
	err := row.Scan(
		&article.ID, &article.Title, &article.Slug, &article.GUID,
		&article.SourceURL, &article.SourceDomain, &article.CanonicalURL,
		&article.ImageURL, &article.Author, &article.OriginalSummary,
		&article.Content, pq.Array(&article.Categories),
		&article.Analysis, &article.AnalysisGenerated, &article.IsRealEstate,
		pq.Array(&article.RelatedNeighborhoods), pq.Array(&article.RelatedListings),
		&article.SEOTitle, &article.SEODescription, pq.Array(&article.SEOKeywords),
		&article.Published, &article.Featured, &article.PublishedAt,
		&article.ContentExtractionStatus, &article.ContentExtractedAt,
		&article.ContentExtractionError, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}
