// Package scheduler runs serve-mode backups: cron-triggered, watcher-
// triggered, or both, serialized through a single worker loop.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/archivist-tools/sqlite-archiver/internal/backup"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
	"github.com/archivist-tools/sqlite-archiver/internal/mailbox"
	"github.com/archivist-tools/sqlite-archiver/internal/retention"
	"github.com/archivist-tools/sqlite-archiver/internal/snapshot"
)

// Job is one pending backup trigger.
type Job struct {
	Trigger string // "cron" or "watch"
	Time    time.Time
}

// Scheduler owns the cron table and the worker loop draining the mailbox.
type Scheduler struct {
	mgr   *backup.Manager
	strat snapshot.Strategy
	pol   retention.Policy
	mb    *mailbox.Mailbox[Job]
	log   logging.Logger
	cron  *cron.Cron
}

func New(mgr *backup.Manager, strat snapshot.Strategy, pol retention.Policy, mb *mailbox.Mailbox[Job], log logging.Logger) *Scheduler {
	if log == nil {
		log = logging.Nop()
	}
	return &Scheduler{
		mgr:   mgr,
		strat: strat,
		pol:   pol,
		mb:    mb,
		log:   log,
	}
}

// StartCron registers spec in a new cron table and starts it. Each firing
// drops a job into the mailbox; an already-pending job is simply replaced.
func (s *Scheduler) StartCron(spec string) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(spec, func() {
		s.mb.Put(Job{Trigger: "cron", Time: time.Now()})
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("cron schedule active", "spec", spec)
	return nil
}

// Run drains the mailbox until ctx is cancelled. Backup and cleanup
// failures are logged and the loop continues. On shutdown the mailbox is
// closed so the feeder exits; a job caught in flight goes back into the
// slot and is reported instead of vanishing.
func (s *Scheduler) Run(ctx context.Context) {
	jobs := make(chan Job)
	go func() {
		defer close(jobs)
		for {
			job, ok := s.mb.Take()
			if !ok {
				return
			}
			select {
			case jobs <- job:
			case <-ctx.Done():
				s.mb.Put(job)
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if s.cron != nil {
				s.cron.Stop()
			}
			s.mb.Close()
			if j := s.mb.TryTake(); j != nil {
				s.log.Warn("dropping pending job at shutdown", "trigger", j.Trigger)
			}
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			s.handle(ctx, job)
		}
	}
}

func (s *Scheduler) handle(ctx context.Context, job Job) {
	s.log.Info("running backup", "trigger", job.Trigger)

	res := s.mgr.CreateBackup(ctx, backup.CreateRequest{Strategy: s.strat})
	if !res.Success {
		s.log.Error("backup failed", "trigger", job.Trigger, "error", res.Err)
		return
	}
	s.log.Debug("backup done", "file", res.Filename, "size", res.Size)

	if s.pol.MaxAgeDays == nil && s.pol.MaxCount == nil {
		return
	}

	cres, err := s.mgr.Cleanup(ctx, s.pol)
	if err != nil {
		s.log.Error("cleanup failed", "error", err)
		return
	}
	for _, msg := range cres.Errors {
		s.log.Warn("cleanup: file not removed", "detail", msg)
	}
	s.log.Info("cleanup complete", "removed", cres.Removed, "remaining", cres.Remaining)
}
