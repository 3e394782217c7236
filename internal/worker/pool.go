// Package worker implements the buffered worker pool pattern for background report refreshes.
// New results make cached standings stale; refresh jobs are queued, batched and processed by:
// - Rebuilding standings from the record store and overwriting the cache
// - Batch inserting ranked snapshots into ClickHouse for season history
// - Graceful shutdown with flush guarantees
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/kegelclub/club-stats/internal/logic"
	"github.com/kegelclub/club-stats/internal/models"
)

// Prometheus metrics
var (
	jobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubstats_refresh_jobs_enqueued_total",
		Help: "Total number of report refresh jobs enqueued",
	})

	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubstats_refresh_jobs_processed_total",
		Help: "Total number of report refresh jobs processed by workers",
	})

	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubstats_refresh_jobs_failed_total",
		Help: "Total number of report refresh jobs that failed",
	})

	jobsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubstats_refresh_jobs_load_shed_total",
		Help: "Total number of refresh jobs dropped because the queue was full",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clubstats_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clubstats_refresh_batch_duration_seconds",
		Help:    "Duration of processing a batch of refresh jobs",
		Buckets: prometheus.DefBuckets,
	})
)

// Job is a request to rebuild one format's standings for one window.
type Job struct {
	ID        uuid.UUID
	Format    models.Format
	Window    models.Window
	Timestamp time.Time
}

func (j Job) dedupKey() string {
	return string(j.Format) + "|" + j.Window.CacheKey()
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Reports       logic.ReportService
	// ClickHouse is optional; snapshots are skipped without it.
	ClickHouse driver.Conn
	Logger     *zap.Logger
}

// Pool manages a pool of workers for background report refreshes
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 16
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
		"snapshots", p.config.ClickHouse != nil,
	)
}

// Stop gracefully shuts down the worker pool
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a refresh job. It never blocks: a full queue or a stopped pool drops the job.
func (p *Pool) Enqueue(format models.Format, window models.Window) (uuid.UUID, bool) {
	job := Job{
		ID:        uuid.New(),
		Format:    format,
		Window:    window,
		Timestamp: time.Now(),
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue job (pool stopped)", "error", r)
		}
	}()

	select {
	case <-p.ctx.Done():
		p.logger.Warn("Worker pool context canceled, dropping job")
		jobsLoadShed.Inc()
		return job.ID, false
	default:
	}

	select {
	case p.jobQueue <- job:
		jobsEnqueued.Inc()
		return job.ID, true
	default:
		p.logger.Warnw("Worker queue full, dropping job", "format", format, "window", window.CacheKey())
		jobsLoadShed.Inc()
		return job.ID, false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker processes jobs from the queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		failed := p.processBatch(batch)
		if failed > 0 {
			p.logger.Errorw("Batch processing had failures", "worker", id, "batchSize", len(batch), "failed", failed)
			jobsFailed.Add(float64(failed))
		}
		jobsProcessed.Add(float64(len(batch) - failed))
		batchDuration.Observe(time.Since(start).Seconds())
		p.logger.Infow("Batch processed", "worker", id, "batchSize", len(batch), "duration", time.Since(start))

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

// processBatch rebuilds each distinct report once and snapshots the results.
// It returns the number of jobs that failed.
func (p *Pool) processBatch(batch []Job) int {
	// The pool context may already be canceled during shutdown; the final flush still runs.
	ctx := context.Background()

	built := make(map[string]*models.Standings, len(batch))
	var order []*models.Standings

	for _, job := range batch {
		key := job.dedupKey()
		if _, ok := built[key]; ok {
			continue
		}

		standings, err := p.config.Reports.RefreshStandings(ctx, job.Format, job.Window)
		if err != nil {
			p.logger.Errorw("Failed to refresh standings", "job", job.ID, "format", job.Format, "error", err)
			built[key] = nil
			continue
		}
		built[key] = standings
		order = append(order, standings)
	}

	if p.config.ClickHouse != nil && len(order) > 0 {
		if err := p.insertSnapshots(ctx, order); err != nil {
			p.logger.Errorw("Failed to insert standings snapshots", "reports", len(order), "error", err)
		}
	}

	// Duplicates of a failed job count as failed too.
	failed := 0
	for _, job := range batch {
		if built[job.dedupKey()] == nil {
			failed++
		}
	}
	return failed
}

// insertSnapshots appends one row per standings entry to ClickHouse.
func (p *Pool) insertSnapshots(ctx context.Context, reports []*models.Standings) error {
	chBatch, err := p.config.ClickHouse.PrepareBatch(ctx, `
		INSERT INTO club_stats.standings_snapshots (
			snapshot_id, taken_at, format, window_kind, window_from, window_to,
			participant_id, participant_name, rank, sum, participation
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare snapshot batch: %w", err)
	}

	takenAt := time.Now().UTC()
	for _, report := range reports {
		snapshotID := uuid.New()
		for _, e := range report.Entries {
			if err := chBatch.Append(
				snapshotID,
				takenAt,
				string(report.Format),
				string(report.Window.Kind),
				dateOrEpoch(report.Window.From),
				dateOrEpoch(report.Window.To),
				int64(e.ParticipantID),
				e.Name,
				uint32(e.RankValue()),
				int64(e.Sum),
				uint32(e.Participation),
			); err != nil {
				p.logger.Warnw("Failed to append snapshot row", "format", report.Format, "participant", e.ParticipantID, "error", err)
			}
		}
	}

	if err := chBatch.Send(); err != nil {
		return fmt.Errorf("send snapshot batch: %w", err)
	}
	return nil
}

// dateOrEpoch maps an unbounded window side to the ClickHouse Date minimum.
func dateOrEpoch(t time.Time) time.Time {
	if t.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return t
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
