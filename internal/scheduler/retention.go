package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository"
	"github.com/vfg2006/value-protractor-api/internal/config"
)

// RetentionService prunes aged rows on a cron schedule: metric rows past the
// raw-data horizon, superseded benchmark batches and stale overlap cache rows.
type RetentionService struct {
	scheduler        *gocron.Scheduler
	cfg              *config.Config
	metricRowRepo    repository.MetricRowRepository
	benchmarkRepo    repository.BenchmarkRepository
	overlapCacheRepo repository.OverlapCacheRepository

	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// RetentionStatus is the snapshot served by the cron status endpoint.
type RetentionStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

func NewRetentionService(
	cfg *config.Config,
	metricRowRepo repository.MetricRowRepository,
	benchmarkRepo repository.BenchmarkRepository,
	overlapCacheRepo repository.OverlapCacheRepository,
) *RetentionService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":        cfg.Retention.CronSchedule,
		"enabled":              cfg.Retention.Enabled,
		"metric_row_days":      cfg.Retention.MetricRowDays,
		"benchmark_days":       cfg.Retention.BenchmarkDays,
		"overlap_cache_hours":  cfg.Retention.OverlapCacheHours,
	}).Info("retention scheduler configured")

	return &RetentionService{
		scheduler:        gocron.NewScheduler(time.Local),
		cfg:              cfg,
		metricRowRepo:    metricRowRepo,
		benchmarkRepo:    benchmarkRepo,
		overlapCacheRepo: overlapCacheRepo,
	}
}

// Start schedules the retention job and stops the scheduler when the context
// is cancelled. Disabled by configuration means no job is registered; RunNow
// still works.
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.cfg.Retention.Enabled {
		logrus.Info("retention scheduler disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.Retention.CronSchedule).Do(func() {
		s.runRetention()
	})
	if err != nil {
		return fmt.Errorf("scheduling retention job: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping retention scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers one retention pass, refusing overlap with a scheduled run.
func (s *RetentionService) RunNow() error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return fmt.Errorf("retention already running")
	}
	s.mutex.Unlock()

	go s.runRetention()
	return nil
}

// Status reports whether a pass is running and when the last one ran.
func (s *RetentionService) Status() RetentionStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := RetentionStatus{
		Enabled:      s.cfg.Retention.Enabled,
		CronSchedule: s.cfg.Retention.CronSchedule,
		Running:      s.running,
	}
	if !s.lastStartedAt.IsZero() {
		started := s.lastStartedAt
		status.LastStartedAt = &started
	}
	if !s.lastCompletedAt.IsZero() {
		completed := s.lastCompletedAt
		status.LastCompletedAt = &completed
	}

	return status
}

func (s *RetentionService) runRetention() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("retention pass already in progress, skipping")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.mutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("retention pass started")

	if deleted, err := s.metricRowRepo.DeleteOlderThan(s.cfg.Retention.MetricRowDays); err != nil {
		logrus.WithField("error", err.Error()).Error("retention: metric row cleanup failed")
	} else {
		logrus.WithField("deleted", deleted).Info("retention: metric rows pruned")
	}

	if deleted, err := s.benchmarkRepo.DeleteOlderThan(s.cfg.Retention.BenchmarkDays); err != nil {
		logrus.WithField("error", err.Error()).Error("retention: benchmark cleanup failed")
	} else {
		logrus.WithField("deleted", deleted).Info("retention: benchmark entries pruned")
	}

	ttl := time.Duration(s.cfg.Retention.OverlapCacheHours) * time.Hour
	if deleted, err := s.overlapCacheRepo.DeleteExpired(ttl); err != nil {
		logrus.WithField("error", err.Error()).Error("retention: overlap cache cleanup failed")
	} else {
		logrus.WithField("deleted", deleted).Info("retention: overlap cache rows pruned")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("retention pass completed")
}
