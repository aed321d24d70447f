package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/view"
)

const maxRequestIDLength = 64

type siteMetrics struct {
	registry  *prometheus.Registry
	pageViews prometheus.Counter
	duration  *prometheus.HistogramVec
}

func newSiteMetrics() *siteMetrics {
	m := &siteMetrics{
		registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Number of times the page was served.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	m.registry.MustRegister(
		m.pageViews,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// newRouter serves the prerendered page. Tracking is off when t is nil.
// Only peers listed in trustedProxies may set the client IP through
// X-Forwarded-For; with none listed the connection address is used.
func newRouter(page []byte, t *tracker, trustedProxies []string, log logger.Logger) (*gin.Engine, error) {
	metrics := newSiteMetrics()

	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	// recovery runs inside logging and metrics so a panic is still logged
	// and observed as a 500
	r.Use(requestIDMiddleware())
	r.Use(loggerMiddleware(log))
	r.Use(metricsMiddleware(metrics))
	r.Use(recoveryMiddleware(log))
	r.Use(securityHeadersMiddleware())
	if t != nil {
		r.Use(t.middleware())
	}

	r.StaticFS("/static", http.FS(view.Static()))

	// Home page route
	r.GET("/", func(c *gin.Context) {
		metrics.pageViews.Inc()
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})))

	return r, nil
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// loggerMiddleware logs one entry per request.
func loggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", c.GetString("request_id")),
		}
		if !strings.HasPrefix(path, "/healthz") {
			fields = append(fields, logger.String("user_agent", c.Request.UserAgent()))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, logger.Strings("errors", c.Errors.Errors()))
			log.Error("HTTP request with errors", fields...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}

func recoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					logger.Any("error", err),
					logger.String("path", c.Request.URL.Path),
					logger.String("method", c.Request.Method),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

func metricsMiddleware(m *siteMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.duration.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Observe(time.Since(start).Seconds())
	}
}

// securityHeadersMiddleware keeps the referrer from leaking to linked sites.
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
