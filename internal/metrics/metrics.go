package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Clicks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "clicks_total",
		Help: "Registered clicks by country.",
	}, []string{"country"})
	LeaderboardRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leaderboard_requests_total",
		Help: "Leaderboard read requests.",
	})
	ClickPublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "click_publish_failures_total",
		Help: "Click events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(Clicks, LeaderboardRequests, ClickPublishFailures)
}

// Handler serves the Prometheus scrape endpoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
