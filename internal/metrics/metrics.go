package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the server's Prometheus collectors.
type Registry struct {
	reg        *prometheus.Registry
	Requests   *prometheus.CounterVec
	LatencySec *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schemapilot_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schemapilot_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	r.MustRegister(requests, latency)
	return &Registry{
		reg:        r,
		Requests:   requests,
		LatencySec: latency,
	}
}

// Handler exposes the registry in Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route.
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		r.LatencySec.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
