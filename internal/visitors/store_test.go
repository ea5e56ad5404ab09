package visitors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := openStore(t)

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")

	// a fresh salt yields unrelated hashes
	other := openStore(t)
	assert.NotEqual(t, h, other.HashIP("203.0.113.7"))
}

func TestStats(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	at := func(t time.Time) { s.now = func() time.Time { return t } }

	at(now.Add(-10 * 24 * time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.1", "old-agent", "/"))
	at(now.Add(-3 * 24 * time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.2", "week-agent", "/"))
	at(now.Add(-time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.1", "today-agent", "/"))
	require.NoError(t, s.Record(ctx, "10.0.0.3", "today-agent", "/contact"))
	at(now)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalVisits)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitsToday)
	assert.EqualValues(t, 3, stats.VisitsThisWeek)
	assert.Equal(t, []PathStat{{Path: "/", Visits: 3}, {Path: "/contact", Visits: 1}}, stats.TopPaths)

	require.Len(t, stats.RecentVisits, 4)
	assert.Equal(t, "/contact", stats.RecentVisits[0].Path)
	assert.Equal(t, "old-agent", stats.RecentVisits[3].UserAgent)
	for _, v := range stats.RecentVisits {
		assert.Len(t, v.HashedIP, 16)
	}
}

func TestCleanup(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now.Add(-400 * 24 * time.Hour) }
	require.NoError(t, s.Record(ctx, "10.0.0.1", "", "/"))
	s.now = func() time.Time { return now }
	require.NoError(t, s.Record(ctx, "10.0.0.1", "", "/"))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, visits, 1)
}

func TestTracked(t *testing.T) {
	assert.True(t, Tracked("/"))
	for _, p := range []string{"/contact-form", "/static/css/site.css", "/admin/dashboard", "/admin", "/api/content", "/privacy", "/metrics", "/healthz", "/favicon.ico"} {
		assert.False(t, Tracked(p), p)
	}
}

func TestTrackerMiddleware(t *testing.T) {
	s := openStore(t)
	tracker := NewTracker(s, zap.NewNop())

	r := gin.New()
	r.Use(tracker.Middleware())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", ok)
	r.GET("/static/x.css", ok)
	r.POST("/contact", ok)
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	send := func(method, path string, dnt bool) {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("User-Agent", "test-agent")
		if dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	send(http.MethodGet, "/", false)
	send(http.MethodGet, "/", true)
	send(http.MethodGet, "/static/x.css", false)
	send(http.MethodPost, "/contact", false)
	send(http.MethodGet, "/wp-login.php", false)
	send(http.MethodGet, "/broken", false)
	tracker.Wait()

	visits, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "/", visits[0].Path)
	assert.Equal(t, "test-agent", visits[0].UserAgent)
	assert.Equal(t, s.HashIP("192.0.2.1"), visits[0].HashedIP)
}

func TestTrackerSweep(t *testing.T) {
	s := openStore(t)
	tracker := NewTracker(s, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	now := time.Now()
	s.now = func() time.Time { return now.Add(-48 * time.Hour) }
	require.NoError(t, s.Record(context.Background(), "10.0.0.1", "", "/"))
	s.now = func() time.Time { return now }

	done := make(chan error, 1)
	go func() { done <- tracker.Sweep(ctx, 24*time.Hour, time.Hour) }()

	require.Eventually(t, func() bool {
		visits, err := s.Recent(context.Background(), 10)
		return err == nil && len(visits) == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
