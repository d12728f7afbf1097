// Package api provides the HTTP handlers for the hotel API
package api

import (
	"net/http"
)

// HealthResponse represents the response for health check endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthLiveHandler handles Kubernetes liveness probe requests
func HealthLiveHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "UP"})
}

// HealthReadyHandler reports ready once the hotel snapshot has been loaded
func HealthReadyHandler(svc HotelServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !svc.Loaded() {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "LOADING"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "UP"})
	}
}
