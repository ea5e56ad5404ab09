// Package metrics exposes Prometheus metrics for the portfolio server.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// No visitor identifiers in labels; paths are the route templates.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "portfolio",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	PageRendersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "page_renders_total",
		Help:      "Full page renders.",
	})

	ContactSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome (sent, invalid, rate_limited, failed).",
	}, []string{"outcome"})

	TypewriterStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "portfolio",
		Name:      "typewriter_streams",
		Help:      "Open typewriter event streams.",
	})
)

// Middleware records request counts and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
