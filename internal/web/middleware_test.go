package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xhamera1/Hotel-app/internal/web"
)

func TestStreamHeadersMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrappedHandler := web.StreamHeadersMiddleware(testHandler)

	t.Run("LeavesOtherRoutesAlone", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		wrappedHandler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

		assert.Empty(t, recorder.Header().Get("X-Accel-Buffering"))
		assert.Empty(t, recorder.Header().Get("Cache-Control"))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("AddsStreamHeadersForEventsEndpoint", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		wrappedHandler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, "no", recorder.Header().Get("X-Accel-Buffering"))
		assert.Equal(t, "no-cache, no-transform", recorder.Header().Get("Cache-Control"))
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, recorder.Header().Get("Alt-Svc"))
	})
}
