package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests - счетчик запросов по маршруту и коду ответа.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_calendar_http_requests_total",
		Help: "HTTP requests by route pattern and status code.",
	}, []string{"route", "status"})

	// BackupRuns - счетчик запусков резервного копирования.
	BackupRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_calendar_backup_runs_total",
		Help: "Backup snapshot runs by kind and outcome.",
	}, []string{"kind", "outcome"})
)
