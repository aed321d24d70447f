package visitors

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/logger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "visitors.db"), "test-salt", logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func at(s *Store, ts time.Time) {
	s.now = func() time.Time { return ts }
}

func TestHashIP(t *testing.T) {
	s := openTestStore(t)

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, hashLength)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestRecordNeverStoresRawIP(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "198.51.100.23", "test-agent", "/"))

	var stored string
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT hashed_ip FROM visitors`).Scan(&stored))
	assert.Equal(t, s.HashIP("198.51.100.23"), stored)
	assert.NotContains(t, stored, "198.51.100.23")
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	at(s, now.Add(-30*24*time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.1", "ua", "/"))
	at(s, now.Add(-3*24*time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.2", "ua", "/"))
	at(s, now.Add(-time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.1", "ua", "/"))
	require.NoError(t, s.Record(ctx, "10.0.0.3", "ua", "/"))

	at(s, now)
	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, s.HashIP("10.0.0.3"), stats.RecentVisitors[0].HashedIP)
	assert.True(t, stats.RecentVisitors[3].Timestamp.Equal(now.Add(-30*24*time.Hour)))
}

func TestCleanup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	at(s, now.Add(-400*24*time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.1", "ua", "/"))
	at(s, now.Add(-10*24*time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.2", "ua", "/"))

	at(s, now)
	removed, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)

	removed, err = s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestOpenGeneratesSalt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitors.db")
	a, err := Open(context.Background(), path, "", logger.NewNop())
	require.NoError(t, err)
	defer a.Close()

	assert.NotEmpty(t, a.salt)
	assert.Len(t, a.salt, 64)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitors.db")
	ctx := context.Background()

	first, err := Open(ctx, path, "salt", logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Record(ctx, "10.0.0.1", "ua", "/"))
	require.NoError(t, first.Close())

	second, err := Open(ctx, path, "salt", logger.NewNop())
	require.NoError(t, err)
	defer second.Close()

	stats, err := second.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
}
