package service

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs periodic housekeeping jobs on a cron clock
type SchedulerService struct {
	cron *cron.Cron
}

// NewSchedulerService creates a scheduler in the given location.
// A panicking job is logged and recovered so it does not stop the others.
func NewSchedulerService(loc *time.Location) *SchedulerService {
	return &SchedulerService{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.PrintfLogger(log.Default()))),
		),
	}
}

// ScheduleInterval registers job to run every interval
func (s *SchedulerService) ScheduleInterval(name string, interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval for %s must be positive", name)
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}

	id, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), job)
	if err != nil {
		return 0, fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	log.Printf("Scheduled job %s every %s", name, time.Duration(seconds)*time.Second)
	return id, nil
}

// Entries reports how many jobs are registered
func (s *SchedulerService) Entries() int {
	return len(s.cron.Entries())
}

// Start begins running jobs in the background
func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
