package scraper

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives periodic ingestion and weekly report generation
// through cron expressions evaluated in the configured timezone.
type Scheduler struct {
	cron     *cron.Cron
	location *time.Location
}

// NewScheduler creates a Scheduler in the given timezone.
func NewScheduler(timezone string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("scraper: load timezone %q: %w", timezone, err)
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		location: loc,
	}, nil
}

// Add registers a task under a cron expression.
func (s *Scheduler) Add(spec string, task func()) error {
	if _, err := s.cron.AddFunc(spec, task); err != nil {
		return fmt.Errorf("scraper: add cron entry %q: %w", spec, err)
	}
	slog.Info("task scheduled", "cron", spec, "timezone", s.location.String())
	return nil
}

// Start begins running scheduled tasks in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running task to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
