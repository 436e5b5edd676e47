// Package providers contains the upstream metadata fetchers and the
// aggregator that runs them in dependency order for a single title.
package providers

import (
	"github.com/davidvr/animeta/internal/metrics"
)

// record tracks one upstream lookup outcome.
func record(provider string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.ProviderRequestsTotal.WithLabelValues(provider, status).Inc()
}
