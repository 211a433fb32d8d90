// Package scheduler runs background maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// BatchJob processes one batch per Execute call and returns the number of
// items handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterRetentionJob sweeps expired media every interval, starting
// immediately. Overlapping runs are rescheduled instead of stacked.
func (m *SchedulerManager) RegisterRetentionJob(job BatchJob, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("retention interval must be positive, got %s", interval)
	}

	timeout := interval
	if timeout > 30*time.Minute {
		timeout = 30 * time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.runRetention(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("retention", "cleanup"),
		gocron.WithName("media-retention"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered retention job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) runRetention(ctx context.Context, job BatchJob) {
	startTime := time.Now()

	deleted, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("retention sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}
	if deleted > 0 {
		m.logger.Infow("retention sweep removed files",
			"count", deleted,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler. It is a no-op when already running.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs and shuts the scheduler down.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
