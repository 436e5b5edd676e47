package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Provider lookup and export metrics
var (
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of provider lookups, by provider and outcome.",
		},
		[]string{"provider", "status"},
	)

	ExportArchivesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_archives_total",
			Help: "Total number of archive exports, by outcome.",
		},
		[]string{"status"},
	)

	ExportAssetsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_assets_total",
			Help: "Total number of artwork downloads attempted during packaging, by outcome.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		ProviderRequestsTotal,
		ExportArchivesTotal,
		ExportAssetsTotal,
	)
}
