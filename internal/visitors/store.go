// Package visitors records page visits without keeping raw IP addresses.
package visitors

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one tracked request.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type Stats struct {
	TotalVisits    int64      `json:"total_visits"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitsToday    int64      `json:"visits_today"`
	VisitsThisWeek int64      `json:"visits_this_week"`
	TopPaths       []PathStat `json:"top_paths"`
	RecentVisits   []Visit    `json:"recent_visits"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL,
	visited_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_visited_at ON visitors(visited_at);
`

// Store is a SQLite backed visit log. Timestamps are unix seconds.
type Store struct {
	db   *sql.DB
	salt []byte
	now  func() time.Time
}

// Open opens (creating if needed) the database at path. ":memory:" is
// accepted for tests.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visitor db: %w", err)
	}
	// one writer; also keeps an in-memory database on a single connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create visitors table: %w", err)
	}

	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		db.Close()
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// HashIP is consistent for one IP within a process lifetime. The salt is
// never persisted so hashes cannot be reversed after a restart.
func (s *Store) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip))
	h.Write(s.salt)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (s *Store) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Recent returns the newest visits first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{midnight.Unix()}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{weekAgo.Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count visits: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = s.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	stats.RecentVisits, err = s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top paths: %w", err)
	}
	defer rows.Close()

	var paths []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Cleanup deletes visits older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	return res.RowsAffected()
}
