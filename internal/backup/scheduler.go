package backup

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/metrics"
)

// Расписание оригинального клиента: weekly - воскресенье 01:00,
// monthly - первое число 02:00, плюс пятиминутная проверка свежести,
// чтобы не пропустить срок после простоя.
const (
	weeklySpec  = "0 1 * * 0"
	monthlySpec = "0 2 1 * *"
	freshSpec   = "@every 5m"
)

type Scheduler struct {
	service *Service
	cron    *cron.Cron
}

func NewScheduler(service *Service) (*Scheduler, error) {
	c := cron.New()

	run := func(kind domain.BackupKind) func() {
		return func() {
			if _, err := service.Snapshot(context.Background(), kind); err != nil {
				log.Printf("Scheduled %s backup failed: %v", kind, err)
				metrics.BackupRuns.WithLabelValues(string(kind), "error").Inc()
				return
			}
			log.Printf("Scheduled %s backup completed", kind)
			metrics.BackupRuns.WithLabelValues(string(kind), "ok").Inc()
		}
	}

	if _, err := c.AddFunc(weeklySpec, run(domain.BackupWeekly)); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(monthlySpec, run(domain.BackupMonthly)); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(freshSpec, func() {
		if err := service.EnsureFresh(context.Background()); err != nil {
			log.Printf("Backup freshness check failed: %v", err)
		}
	}); err != nil {
		return nil, err
	}

	return &Scheduler{service: service, cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и дожидается запущенных задач.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
