// Package refresh runs the periodic headline reload on a cron schedule.
package refresh

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// StopTimeout bounds how long Stop waits for a running job
const StopTimeout = 5 * time.Second

// ValidateSchedule reports whether spec is usable; empty means disabled and is valid
func ValidateSchedule(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return nil
}

// Scheduler owns a single recurring refresh job.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger

	mu      sync.Mutex
	entry   cron.EntryID
	spec    string
	running bool
}

// NewScheduler constructs a stopped Scheduler.
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
}

// Schedule replaces the current job. An empty spec removes it.
func (s *Scheduler) Schedule(spec string, job func()) error {
	if err := ValidateSchedule(spec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entry != 0 {
		s.cron.Remove(s.entry)
		s.entry = 0
	}
	s.spec = spec

	if spec == "" || job == nil {
		s.logger.Info("auto-refresh disabled")
		return nil
	}

	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	s.entry = id
	s.logger.Info("auto-refresh scheduled", "schedule", spec)
	return nil
}

// Spec returns the active schedule, empty when disabled
func (s *Scheduler) Spec() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

// Next returns the next planned run, zero when nothing is scheduled or the scheduler is stopped
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	entry := s.entry
	s.mu.Unlock()

	if entry == 0 {
		return time.Time{}
	}
	return s.cron.Entry(entry).Next
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
}

// Stop halts the scheduler and waits up to StopTimeout for a running job.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(StopTimeout):
		s.logger.Warn("refresh job still running at shutdown")
	}
}
