// Package scheduler runs the engine's periodic jobs on gocron v2.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

const (
	defaultSweepInterval = 5 * time.Minute
	stopTimeout          = 30 * time.Second
)

// BatchJob processes one batch and returns how many items it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SweepRun describes the most recent finished sweep.
type SweepRun struct {
	StartedAt time.Time
	Duration  time.Duration
	Notified  int
	Err       error
}

// SchedulerManager owns the process-wide gocron scheduler. Jobs run in UTC.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface
	started   atomic.Bool

	lastMu    sync.RWMutex
	lastSweep *SweepRun
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithStopTimeout(stopTimeout),
	)
	if err != nil {
		return nil, err
	}
	return &SchedulerManager{scheduler: s, logger: log}, nil
}

// RegisterSLASweepJob runs sweepJob every interval, starting right away. A tick
// that fires while the previous sweep is still running is rescheduled, so sweeps
// never overlap within one process.
func (m *SchedulerManager) RegisterSLASweepJob(sweepJob BatchJob, interval time.Duration) error {
	if sweepJob == nil {
		return errors.New("sla sweep job is nil")
	}
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			m.runSweep(ctx, sweepJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("inquiry", "sla"),
		gocron.WithName("sla-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered sla sweep job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) runSweep(ctx context.Context, sweepJob BatchJob) {
	run := SweepRun{StartedAt: biztime.NowUTC()}
	run.Notified, run.Err = sweepJob.Execute(ctx)
	run.Duration = time.Since(run.StartedAt)

	m.lastMu.Lock()
	m.lastSweep = &run
	m.lastMu.Unlock()

	switch {
	case run.Err != nil:
		m.logger.Errorw("sla sweep failed", "error", run.Err, "duration", run.Duration)
	case run.Notified > 0:
		m.logger.Infow("sla sweep completed", "notifications", run.Notified, "duration", run.Duration)
	default:
		m.logger.Debugw("sla sweep found nothing to notify", "duration", run.Duration)
	}
}

// LastSweep returns the most recent finished sweep, or false before the first one.
func (m *SchedulerManager) LastSweep() (SweepRun, bool) {
	m.lastMu.RLock()
	defer m.lastMu.RUnlock()
	if m.lastSweep == nil {
		return SweepRun{}, false
	}
	return *m.lastSweep, true
}

// Start is a no-op when the scheduler is already running.
func (m *SchedulerManager) Start() {
	if !m.started.CompareAndSwap(false, true) {
		return
	}
	m.scheduler.Start()
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits up to stopTimeout for running jobs. The scheduler cannot be
// restarted afterwards.
func (m *SchedulerManager) Stop() error {
	if !m.started.CompareAndSwap(true, false) {
		return nil
	}
	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Errorw("scheduler shutdown with error", "error", err)
		return err
	}
	m.logger.Infow("scheduler stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	return m.started.Load()
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
