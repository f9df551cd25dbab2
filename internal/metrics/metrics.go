package metrics

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service counters exposed on /metrics.
type Metrics struct {
	SuccessfulRequests *prometheus.CounterVec
	BadRequests        *prometheus.CounterVec
	PostsCreated       prometheus.Counter
	MessagesSent       prometheus.Counter
	FollowRequests     prometheus.Counter
	UnfollowRequests   prometheus.Counter
}

// New registers the counters with reg and returns them. Pass a fresh
// registry in tests to avoid duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"path"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx/5xx) HTTP requests",
			},
			[]string{"path"},
		),
		PostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "posts_created",
			Help: "Total number of posts published to boards",
		}),
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "successful_message",
			Help: "Total number of successfully sent private messages",
		}),
		FollowRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "successful_follows",
			Help: "Total number of successful follow requests",
		}),
		UnfollowRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "successful_unfollows",
			Help: "Total number of successful unfollow requests",
		}),
	}

	reg.MustRegister(
		m.SuccessfulRequests,
		m.BadRequests,
		m.PostsCreated,
		m.MessagesSent,
		m.FollowRequests,
		m.UnfollowRequests,
	)
	return m
}

// Middleware counts request outcomes per route path.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			if status >= 200 && status < 300 {
				m.SuccessfulRequests.WithLabelValues(c.Path()).Inc()
			} else if status >= 400 {
				m.BadRequests.WithLabelValues(c.Path()).Inc()
			}
			return err
		}
	}
}

// Handler exposes the gatherer in Prometheus text format.
func Handler(g prometheus.Gatherer) echo.HandlerFunc {
	h := promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	return echo.WrapHandler(http.HandlerFunc(h.ServeHTTP))
}
