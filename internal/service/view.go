package service

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/xhamera1/Hotel-app/internal/models"
)

// ReservationView is a read-only copy of a reservation
type ReservationView struct {
	CheckIn  civil.Date     `json:"check_in"`
	CheckOut civil.Date     `json:"check_out"`
	Nights   int            `json:"nights"`
	Guests   []models.Guest `json:"guests"`
}

// RoomView is a read-only copy of a room as seen on a given day. It shares
// no memory with the hotel and can be handed to other goroutines.
type RoomView struct {
	Number        int               `json:"number"`
	Description   string            `json:"description"`
	PricePerNight decimal.Decimal   `json:"price_per_night"`
	Capacity      int               `json:"capacity"`
	Level         int               `json:"level"`
	Occupied      bool              `json:"occupied"`
	Guests        []models.Guest    `json:"guests"`
	CheckIn       *civil.Date       `json:"check_in,omitempty"`
	CheckOut      *civil.Date       `json:"check_out,omitempty"`
	Reservations  []ReservationView `json:"reservations"`
}

func newReservationView(reservation models.Reservation) ReservationView {
	return ReservationView{
		CheckIn:  reservation.Period().Start(),
		CheckOut: reservation.Period().End(),
		Nights:   reservation.Period().Nights(),
		Guests:   reservation.Guests(),
	}
}

func newRoomView(room *models.Room, today civil.Date) RoomView {
	view := RoomView{
		Number:        room.Number(),
		Description:   room.Description(),
		PricePerNight: room.PricePerNight(),
		Capacity:      room.Capacity(),
		Level:         room.Level(),
		Guests:        room.CurrentGuests(today),
	}

	if stay, ok := room.CurrentStay(today); ok {
		view.Occupied = true
		view.CheckIn = &stay.CheckIn
		view.CheckOut = &stay.PlannedCheckOut
	}

	reservations := room.Reservations()
	view.Reservations = make([]ReservationView, 0, len(reservations))
	for _, reservation := range reservations {
		view.Reservations = append(view.Reservations, newReservationView(reservation))
	}
	return view
}
