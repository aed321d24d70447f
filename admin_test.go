package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/visitors"
)

const testRetention = 30 * 24 * time.Hour

type fakeAdminStore struct {
	stats      *visitors.Stats
	removed    int64
	err        error
	retentions []time.Duration
}

func (f *fakeAdminStore) Stats(context.Context) (*visitors.Stats, error) {
	return f.stats, f.err
}

func (f *fakeAdminStore) Cleanup(_ context.Context, retention time.Duration) (int64, error) {
	f.retentions = append(f.retentions, retention)
	return f.removed, f.err
}

func adminRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminStats(t *testing.T) {
	store := &fakeAdminStore{stats: &visitors.Stats{TotalVisitors: 12, UniqueVisitors: 5}}

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{name: "valid token", auth: "Bearer s3cret", status: http.StatusOK},
		{name: "missing header", auth: "", status: http.StatusUnauthorized},
		{name: "wrong token", auth: "Bearer nope", status: http.StatusUnauthorized},
		{name: "wrong scheme", auth: "Basic s3cret", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, nil)
			setupAdminRoutes(r, "s3cret", store, testRetention, logger.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := serve(r, req)

			require.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}
			var got visitors.Stats
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.EqualValues(t, 12, got.TotalVisitors)
			assert.EqualValues(t, 5, got.UniqueVisitors)
		})
	}
}

func TestAdminStatsError(t *testing.T) {
	r := newTestRouter(t, nil)
	setupAdminRoutes(r, "s3cret", &fakeAdminStore{err: errors.New("locked")}, testRetention, logger.NewNop())

	w := serve(r, adminRequest(http.MethodGet, "/admin/stats", "s3cret"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "locked")
}

func TestAdminCleanup(t *testing.T) {
	store := &fakeAdminStore{removed: 7}
	r := newTestRouter(t, nil)
	setupAdminRoutes(r, "s3cret", store, testRetention, logger.NewNop())

	t.Run("requires token", func(t *testing.T) {
		w := serve(r, adminRequest(http.MethodPost, "/admin/privacy/cleanup", ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, store.retentions)
	})

	t.Run("get is not allowed", func(t *testing.T) {
		w := serve(r, adminRequest(http.MethodGet, "/admin/privacy/cleanup", "s3cret"))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, store.retentions)
	})

	t.Run("removes expired rows", func(t *testing.T) {
		w := serve(r, adminRequest(http.MethodPost, "/admin/privacy/cleanup", "s3cret"))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]int64
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(7), body["removed"])
		assert.Equal(t, []time.Duration{testRetention}, store.retentions)
	})
}

func TestAdminCleanupError(t *testing.T) {
	r := newTestRouter(t, nil)
	setupAdminRoutes(r, "s3cret", &fakeAdminStore{err: errors.New("disk I/O error")}, testRetention, logger.NewNop())

	w := serve(r, adminRequest(http.MethodPost, "/admin/privacy/cleanup", "s3cret"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk")
}

func TestAdminCleanupWithStore(t *testing.T) {
	ctx := context.Background()
	store, err := visitors.Open(ctx, filepath.Join(t.TempDir(), "visitors.db"), "salt", logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Record(ctx, "192.0.2.1", "ua", "/"))

	r := newTestRouter(t, nil)
	setupAdminRoutes(r, "s3cret", store, time.Nanosecond, logger.NewNop())

	time.Sleep(5 * time.Millisecond)
	w := serve(r, adminRequest(http.MethodPost, "/admin/privacy/cleanup", "s3cret"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":1}`, w.Body.String())

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
}

func TestAdminRoutesDisabled(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		r := newTestRouter(t, nil)
		setupAdminRoutes(r, "", &fakeAdminStore{stats: &visitors.Stats{}}, testRetention, logger.NewNop())

		w := serve(r, adminRequest(http.MethodGet, "/admin/stats", ""))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no store", func(t *testing.T) {
		r := newTestRouter(t, nil)
		setupAdminRoutes(r, "s3cret", nil, testRetention, logger.NewNop())

		w := serve(r, adminRequest(http.MethodGet, "/admin/stats", "s3cret"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminRequestsAreNotTracked(t *testing.T) {
	rec := &fakeRecorder{}
	tr := newTracker(rec, logger.NewNop())
	r := newTestRouter(t, tr)
	setupAdminRoutes(r, "s3cret", &fakeAdminStore{stats: &visitors.Stats{}}, testRetention, logger.NewNop())

	w := serve(r, adminRequest(http.MethodGet, "/admin/stats", "s3cret"))
	tr.wait()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, rec.recorded())
}
