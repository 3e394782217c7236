package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubstats_reports_built_total",
		Help: "Total number of reports computed from records",
	}, []string{"report"})

	reportCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubstats_report_cache_hits_total",
		Help: "Total number of reports served from cache",
	}, []string{"report"})

	reportBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clubstats_report_build_duration_seconds",
		Help:    "Duration of fetching records and building a report",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
)
