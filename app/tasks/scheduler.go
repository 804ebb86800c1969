package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/karasuemlak/gundem-feed/app/config"
	"github.com/karasuemlak/gundem-feed/app/database"
	"github.com/karasuemlak/gundem-feed/app/feed"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler owns the background worker pool. A ticker enqueues sync and
// extraction tasks for sources that are due; failed tasks are retried
// with bounded exponential backoff.
type Scheduler struct {
	sources          map[string]*config.Source
	feedService      *feed.Service
	fetcher          feed.Fetcher
	contentExtractor *feed.ContentExtractor
	articleRepo      database.ArticleRepository
	interval         time.Duration
	workerCount      int
	ctx              context.Context
	cancel           context.CancelFunc
	wg               sync.WaitGroup
	taskQueue        chan TaskInterface

	mu      sync.Mutex
	nextRun map[string]time.Time
}

func NewScheduler(sources map[string]*config.Source, feedService *feed.Service,
	fetcher feed.Fetcher, articleRepo database.ArticleRepository,
	interval time.Duration, workerCount int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		sources:          sources,
		feedService:      feedService,
		fetcher:          fetcher,
		contentExtractor: feed.NewContentExtractor(),
		articleRepo:      articleRepo,
		interval:         interval,
		workerCount:      workerCount,
		ctx:              ctx,
		cancel:           cancel,
		taskQueue:        make(chan TaskInterface, 300),
		nextRun:          make(map[string]time.Time),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueDueTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueDueTasks()
			}
		}
	}()
}

// Stop cancels the scheduler context and waits for workers to drain.
// The task queue is left open: detached retry goroutines may still call
// EnqueueTask after shutdown, and they bail out on the cancelled context.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) enqueueDueTasks() {
	now := time.Now().UTC()

	for _, source := range s.sources {
		if !source.Settings.Enabled {
			slog.Debug("Source disabled, skipping", "source", source.Name)
			continue
		}

		if !s.isDue(source.Name, now) {
			continue
		}

		syncTask := NewSyncSourceTask(source, s.feedService, s.articleRepo)
		if err := s.EnqueueTask(syncTask); err != nil {
			slog.Warn("Failed to enqueue SyncSourceTask", "source", source.Name, "error", err)
			continue
		}

		if source.Settings.ExtractContent {
			extractTask := NewExtractContentTask(source, s.fetcher, s.contentExtractor, s.articleRepo)
			if err := s.EnqueueTask(extractTask); err != nil {
				slog.Warn("Failed to enqueue ExtractContentTask", "source", source.Name, "error", err)
			}
		}

		s.markScheduled(source, now)
	}
}

// isDue reports whether the source's refresh interval has elapsed. State
// is in-memory only: a restart simply re-syncs every source once, which
// is harmless because upserts are idempotent.
func (s *Scheduler) isDue(sourceName string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.nextRun[sourceName]
	return !ok || !next.After(now)
}

func (s *Scheduler) markScheduled(source *config.Source, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRun[source.Name] = now.Add(time.Duration(source.Settings.RefreshInterval) * time.Second)
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)
	if err == nil {
		return
	}

	slog.Error("Worker task execution failed",
		"worker_id", workerID,
		"type", string(task.GetType()),
		"id", task.GetID(),
		"retry_count", task.GetRetryCount(),
		"error", err)

	if !task.CanRetry() {
		slog.Error("Task failed after maximum retries",
			"type", string(task.GetType()),
			"id", task.GetID(),
			"retry_count", task.GetRetryCount(),
			"max_retries", task.GetMaxRetries(),
			"last_error", err)
		return
	}

	task.IncrementRetryCount()
	retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
	if retryDelay > 30*time.Second {
		retryDelay = 30 * time.Second
	}

	slog.Warn("Task retry scheduled",
		"type", string(task.GetType()),
		"source", task.GetSourceName(),
		"retry_count", task.GetRetryCount(),
		"max_retries", task.GetMaxRetries(),
		"delay", retryDelay.String())

	go func() {
		time.Sleep(retryDelay)
		select {
		case <-s.ctx.Done():
			slog.Debug("Scheduler stopped, skipping task retry",
				"type", string(task.GetType()), "id", task.GetID())
		default:
			if retryErr := s.EnqueueTask(task); retryErr != nil {
				slog.Error("Failed to re-enqueue task for retry",
					"type", string(task.GetType()), "id", task.GetID(), "error", retryErr)
			}
		}
	}()
}
