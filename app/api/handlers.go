package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karasuemlak/gundem-feed/app/config"
	"github.com/karasuemlak/gundem-feed/app/database"
	"github.com/karasuemlak/gundem-feed/app/feed"
	"github.com/karasuemlak/gundem-feed/app/tasks"
)

const defaultArticleLimit = 20

type Handler struct {
	articleRepo database.ArticleRepository
	sources     map[string]*config.Source
	feedService *feed.Service
	scheduler   tasks.TaskSchedulerInterface
}

func NewHandler(articleRepo database.ArticleRepository, sources map[string]*config.Source,
	feedService *feed.Service, scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		articleRepo: articleRepo,
		sources:     sources,
		feedService: feedService,
		scheduler:   scheduler,
	}
}

func (h *Handler) GetArticles(c *gin.Context) {
	limit := defaultArticleLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 100"})
			return
		}
		limit = parsed
	}

	articles, err := h.articleRepo.GetPublishedArticles(limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_articles", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]articleResponse, 0, len(articles))
	for _, article := range articles {
		response = append(response, toArticleResponse(article))
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": response,
		"count":    len(response),
	})
}

func (h *Handler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	article, err := h.articleRepo.GetArticleBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_article", "slug", slug, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article))
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"sources":   len(h.sources),
	}

	if count, err := h.articleRepo.GetArticleCount(); err == nil {
		health["articles"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	total, published, realEstate, err := h.articleRepo.GetArticleStats()
	if err != nil {
		slog.Error("Database error", "operation", "get_stats", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_articles":       total,
		"published_articles":   published,
		"real_estate_articles": realEstate,
		"sources":              len(h.sources),
	})
}

func (h *Handler) APIListSources(c *gin.Context) {
	sources := make([]gin.H, 0, len(h.sources))
	for _, source := range h.sources {
		sources = append(sources, gin.H{
			"name":             source.Name,
			"url":              source.URL,
			"enabled":          source.Settings.Enabled,
			"refresh_interval": source.Settings.RefreshInterval,
			"auto_publish":     source.Settings.AutoPublish,
			"extract_content":  source.Settings.ExtractContent,
		})
	}

	c.JSON(http.StatusOK, gin.H{"sources": sources})
}

func (h *Handler) APISyncSource(c *gin.Context) {
	name := c.Param("name")

	source, ok := h.sources[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "source not found"})
		return
	}

	task := tasks.NewSyncSourceTask(source, h.feedService, h.articleRepo)
	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Failed to enqueue sync task", "source", name, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to enqueue sync task"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "sync scheduled",
		"source":  name,
		"task_id": task.GetID(),
	})
}
