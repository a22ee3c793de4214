package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/device-notes/models"
)

func TestWithRecovery(t *testing.T) {
	t.Run("panic resolves to an error envelope", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("something went badly wrong")
		})

		req := httptest.NewRequest(http.MethodPost, "/api/notes/add", nil)
		rec := httptest.NewRecorder()

		handler.withRecovery(panicking).ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var envelope models.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		assert.Equal(t, "something went badly wrong", envelope.Message)
	})

	t.Run("healthy handler passes through untouched", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.withRecovery(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestWithTraceID(t *testing.T) {
	handler, _ := newTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("generates a trace id when none is supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.withTraceID(next).ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	})

	t.Run("propagates a supplied trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "trace-123")
		rec := httptest.NewRecorder()

		handler.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
	})
}

func TestGetServerVersion(t *testing.T) {
	handler, _ := newTestHandler(t)
	router := handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v1.0.0", rec.Body.String())
}
