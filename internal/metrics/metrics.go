// Package metrics holds the process's prometheus registry: the
// connections_total gauge the spec requires plus an HTTP handler to expose
// it.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ConnectionsTotal is the live subscriber count: incremented on successful
// registration, decremented on any removal path (lag-eviction, passive
// removal, or shutdown).
var ConnectionsTotal = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "geyser_connections_total",
		Help: "Number of live gRPC subscribers currently registered with the dispatch loop",
	},
)

func init() {
	prometheus.MustRegister(ConnectionsTotal)
}

// Handler exposes the registry over HTTP for a Prometheus scraper.
func Handler() http.Handler {
	return promhttp.Handler()
}
