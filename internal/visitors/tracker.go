package visitors

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/api/",
	"/favicon",
	"/privacy",
	"/contact",
	"/metrics",
	"/healthz",
}

// Tracked reports whether a request path counts as a page visit.
func Tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Tracker writes visits in the background so page responses never wait on
// the database.
type Tracker struct {
	store  *Store
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewTracker(store *Store, logger *zap.Logger) *Tracker {
	return &Tracker{store: store, logger: logger}
}

// Middleware records successful GET requests for known pages once the
// handler has run. Requests sending DNT: 1 are skipped.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.FullPath() == "" || !Tracked(path) || c.GetHeader("DNT") == "1" {
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.store.Record(ctx, ip, ua, path); err != nil {
				t.logger.Warn("Error recording visitor", zap.Error(err))
			}
		}()
	}
}

// Wait blocks until pending writes finish.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Sweep deletes expired visits every interval until ctx is done.
func (t *Tracker) Sweep(ctx context.Context, retention, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		t.cleanup(ctx, retention)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (t *Tracker) cleanup(ctx context.Context, retention time.Duration) {
	n, err := t.store.Cleanup(ctx, retention)
	if err != nil {
		if ctx.Err() == nil {
			t.logger.Error("Error cleaning up old visitor data", zap.Error(err))
		}
		return
	}
	if n > 0 {
		t.logger.Info("Privacy cleanup removed old visitor records",
			zap.Int64("rows", n), zap.Duration("retention", retention))
	}
}
