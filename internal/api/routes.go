package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xhamera1/Hotel-app/internal/web"
	"go.uber.org/zap"
)

// NewRouter configures the HTTP routes for the API. events serves the room
// update stream and may be nil.
func NewRouter(svc HotelServicer, events http.Handler, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware(logger))
	router.Use(web.StreamHeadersMiddleware)

	// Health check endpoints for Kubernetes
	router.HandleFunc("/health/live", HealthLiveHandler).Methods(http.MethodGet)
	router.HandleFunc("/health/ready", HealthReadyHandler(svc)).Methods(http.MethodGet)

	rooms := NewRoomHandler(svc, logger)
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/rooms", rooms.listRooms).Methods(http.MethodGet)
	apiRouter.HandleFunc("/rooms/{number:[0-9]+}", rooms.getRoom).Methods(http.MethodGet)
	apiRouter.HandleFunc("/rooms/{number:[0-9]+}/checkin", rooms.checkIn).Methods(http.MethodPost)
	apiRouter.HandleFunc("/rooms/{number:[0-9]+}/guests", rooms.addGuest).Methods(http.MethodPost)
	apiRouter.HandleFunc("/rooms/{number:[0-9]+}/checkout", rooms.checkOut).Methods(http.MethodPost)
	apiRouter.HandleFunc("/snapshot", rooms.saveSnapshot).Methods(http.MethodPost)

	if events != nil {
		router.Handle("/events", events).Methods(http.MethodGet)
	}

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	})

	return router
}
