// Package web publishes room updates to browsers as server-sent events
package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/r3labs/sse/v2"
	"github.com/xhamera1/Hotel-app/internal/service"
	"go.uber.org/zap"
)

// RoomsStream is the stream carrying room updates
const RoomsStream = "rooms"

// RoomNotifier broadcasts room views to connected event stream clients
type RoomNotifier struct {
	server  *sse.Server
	logger  *zap.Logger
	counter atomic.Uint64
}

// NewRoomNotifier creates a notifier with an open rooms stream
func NewRoomNotifier(logger *zap.Logger) *RoomNotifier {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(RoomsStream)

	return &RoomNotifier{server: server, logger: logger}
}

// ServeHTTP subscribes the client to the rooms stream
func (n *RoomNotifier) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("stream") == "" {
		r = r.Clone(r.Context())
		query := r.URL.Query()
		query.Set("stream", RoomsStream)
		r.URL.RawQuery = query.Encode()
	}

	n.logger.Debug("Event stream client connected", zap.String("remote_addr", r.RemoteAddr))
	n.server.ServeHTTP(w, r)
}

// NotifyRoomUpdate publishes view as an "update" event. It matches
// service.RoomUpdateCallback.
func (n *RoomNotifier) NotifyRoomUpdate(view service.RoomView) {
	data, err := json.Marshal(view)
	if err != nil {
		n.logger.Error("Failed to encode room update", zap.Int("room", view.Number), zap.Error(err))
		return
	}

	id := n.counter.Add(1)
	n.server.Publish(RoomsStream, &sse.Event{
		ID:    []byte(strconv.FormatUint(id, 10)),
		Event: []byte("update"),
		Data:  data,
	})
	n.logger.Debug("Published room update", zap.Int("room", view.Number), zap.Uint64("event_id", id))
}

// Close disconnects all clients
func (n *RoomNotifier) Close() {
	n.server.Close()
}
