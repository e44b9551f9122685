package httphandler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httphandler "github.com/ericfisherdev/nametrack/internal/adapter/driving/http"
	"github.com/ericfisherdev/nametrack/internal/application"
	"github.com/ericfisherdev/nametrack/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementation ---

type mockVisitStore struct {
	receipt model.VisitReceipt
	err     error
}

func (m *mockVisitStore) RecordVisit(_ context.Context, _ string, _ time.Time) (model.VisitReceipt, error) {
	return m.receipt, m.err
}

func (m *mockVisitStore) ListTop(_ context.Context, _ int, _ model.SortOrder) ([]model.VisitRecord, error) {
	return nil, nil
}

func (m *mockVisitStore) ClearAll(_ context.Context) error { return nil }

func newTestRouter(store *mockVisitStore) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := application.NewVisitService(store)
	h := httphandler.NewHandler(svc, logger)
	return httphandler.NewRouter(h, logger)
}

func get(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)

	return rec, string(body)
}

func TestRoot(t *testing.T) {
	router := newTestRouter(&mockVisitStore{})

	rec, body := get(t, router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, world!", body)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&mockVisitStore{})

	rec, body := get(t, router, "/ok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", body)
}

func TestGreetFirstVisit(t *testing.T) {
	router := newTestRouter(&mockVisitStore{receipt: model.VisitReceipt{Name: "alice"}})

	rec, body := get(t, router, "/hello/alice")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello alice! This is your first visit!", body)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestGreetRepeatVisit(t *testing.T) {
	router := newTestRouter(&mockVisitStore{receipt: model.VisitReceipt{
		Name:             "alice",
		PreviousCount:    2,
		PreviousLastSeen: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}})

	rec, body := get(t, router, "/hello/alice")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello alice! You've been called 2 times previously. Last seen: 2026-03-14 09:26:53", body)
}

func TestGreetStoreError(t *testing.T) {
	router := newTestRouter(&mockVisitStore{err: errors.New("connection refused")})

	rec, body := get(t, router, "/hello/alice")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body, "connection refused")
}

func TestGreetWithoutNameDoesNotMatch(t *testing.T) {
	router := newTestRouter(&mockVisitStore{})

	rec, _ := get(t, router, "/hello/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(&mockVisitStore{})

	req := httptest.NewRequest(http.MethodPost, "/hello/alice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
