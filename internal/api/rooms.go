package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/gorilla/mux"
	"github.com/xhamera1/Hotel-app/internal/models"
	"github.com/xhamera1/Hotel-app/internal/service"
	"github.com/xhamera1/Hotel-app/internal/snapshot"
	"go.uber.org/zap"
)

// GuestRequest is a guest in a request body
type GuestRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CheckInRequest is the body of POST /api/rooms/{number}/checkin
type CheckInRequest struct {
	Guests []GuestRequest `json:"guests"`
	// CheckIn is YYYY-MM-DD; empty means today
	CheckIn string `json:"check_in,omitempty"`
	Nights  int    `json:"nights"`
}

// ReservationResponse describes a created reservation
type ReservationResponse struct {
	RoomNumber int            `json:"room_number"`
	CheckIn    civil.Date     `json:"check_in"`
	CheckOut   civil.Date     `json:"check_out"`
	Nights     int            `json:"nights"`
	Guests     []models.Guest `json:"guests"`
}

// BillResponse describes the cost of a finished stay
type BillResponse struct {
	RoomNumber    int        `json:"room_number"`
	CheckIn       civil.Date `json:"check_in"`
	CheckOut      civil.Date `json:"check_out"`
	Nights        int        `json:"nights"`
	PricePerNight string     `json:"price_per_night"`
	Total         string     `json:"total"`
}

// RoomHandler handles HTTP requests for rooms and bookings
type RoomHandler struct {
	svc    HotelServicer
	logger *zap.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(svc HotelServicer, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{svc: svc, logger: logger}
}

// roomNumber reads the {number} path variable
func roomNumber(r *http.Request) (int, error) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid room number", service.ErrInvalidRequest)
	}
	return number, nil
}

// decodeBody decodes a JSON request body into v
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", service.ErrInvalidRequest, err)
	}
	return nil
}

// listRooms handles GET /api/rooms
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Rooms())
}

// getRoom handles GET /api/rooms/{number}
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request) {
	number, err := roomNumber(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	room, err := h.svc.Room(number)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// checkIn handles POST /api/rooms/{number}/checkin
func (h *RoomHandler) checkIn(w http.ResponseWriter, r *http.Request) {
	number, err := roomNumber(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var body CheckInRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var checkIn civil.Date
	if date := strings.TrimSpace(body.CheckIn); date != "" {
		checkIn, err = civil.ParseDate(date)
		if err != nil {
			writeError(w, r, h.logger, fmt.Errorf("%w: invalid check-in date %q", service.ErrInvalidRequest, body.CheckIn))
			return
		}
	}

	guests := make([]models.Guest, 0, len(body.Guests))
	for i, guest := range body.Guests {
		guests = append(guests, models.NewGuest(strings.TrimSpace(guest.FirstName), strings.TrimSpace(guest.LastName), i == 0))
	}

	reservation, err := h.svc.CheckIn(r.Context(), service.CheckInRequest{
		RoomNumber: number,
		Guests:     guests,
		CheckIn:    checkIn,
		Nights:     body.Nights,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, ReservationResponse{
		RoomNumber: number,
		CheckIn:    reservation.Period().Start(),
		CheckOut:   reservation.Period().End(),
		Nights:     reservation.Period().Nights(),
		Guests:     reservation.Guests(),
	})
}

// addGuest handles POST /api/rooms/{number}/guests
func (h *RoomHandler) addGuest(w http.ResponseWriter, r *http.Request) {
	number, err := roomNumber(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var body GuestRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	guest := models.NewGuest(strings.TrimSpace(body.FirstName), strings.TrimSpace(body.LastName), false)
	room, err := h.svc.AddGuest(r.Context(), number, guest)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// checkOut handles POST /api/rooms/{number}/checkout
func (h *RoomHandler) checkOut(w http.ResponseWriter, r *http.Request) {
	number, err := roomNumber(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	bill, err := h.svc.CheckOut(r.Context(), number)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, BillResponse{
		RoomNumber:    bill.RoomNumber,
		CheckIn:       bill.Reservation.Period().Start(),
		CheckOut:      bill.Reservation.Period().End(),
		Nights:        bill.Nights,
		PricePerNight: snapshot.FormatPrice(bill.PricePerNight),
		Total:         snapshot.FormatPrice(bill.Total),
	})
}

// saveSnapshot handles POST /api/snapshot
func (h *RoomHandler) saveSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Save(r.Context()); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Snapshot saved successfully"})
}
