package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/logger"
)

const recordTimeout = 5 * time.Second

// recorder stores a page view. *visitors.Store satisfies it.
type recorder interface {
	Record(ctx context.Context, ip, userAgent, path string) error
}

// untrackedPrefixes are never counted as page views.
var untrackedPrefixes = []string{"/static/", "/healthz", "/metrics", "/favicon", "/admin"}

// tracker records page views in the background.
type tracker struct {
	rec recorder
	log logger.Logger
	wg  sync.WaitGroup
}

func newTracker(rec recorder, log logger.Logger) *tracker {
	return &tracker{rec: rec, log: log}
}

// middleware records every tracked request after it is served. Requests
// carrying "DNT: 1" are skipped.
func (t *tracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}

		ip, ua := c.ClientIP(), c.Request.UserAgent()
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := t.rec.Record(ctx, ip, ua, path); err != nil {
				t.log.Warn("Error recording visitor", logger.Error(err), logger.String("path", path))
			}
		}()
	}
}

// wait blocks until in-flight recordings finish.
func (t *tracker) wait() {
	t.wg.Wait()
}

// cleaner deletes visitor data older than a retention window.
// *visitors.Store satisfies it.
type cleaner interface {
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// runCleanup deletes expired visitor data right away and then once per
// interval until ctx is done.
func runCleanup(ctx context.Context, c cleaner, retention, interval time.Duration, log logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := c.Cleanup(ctx, retention); err != nil && ctx.Err() == nil {
			log.Warn("Error cleaning up old visitor data", logger.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
