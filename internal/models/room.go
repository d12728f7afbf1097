package models

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Room is a bookable hotel room. Its occupancy is not stored: it is derived
// from the reservation whose period contains a reference date.
type Room struct {
	number        int
	pricePerNight decimal.Decimal
	capacity      int
	description   string
	reservations  []Reservation
}

// Stay describes the occupancy of a room on a given date
type Stay struct {
	Guests          []Guest
	CheckIn         civil.Date
	PlannedCheckOut civil.Date
}

// Bill is the result of checking a room out
type Bill struct {
	RoomNumber    int
	Reservation   Reservation
	PricePerNight decimal.Decimal
	Nights        int
	Total         decimal.Decimal
}

// NewRoom creates a room without reservations
func NewRoom(number int, pricePerNight decimal.Decimal, capacity int, description string) (*Room, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: room %d capacity must be at least 1, got %d", ErrInvalidArgument, number, capacity)
	}
	if pricePerNight.IsNegative() {
		return nil, fmt.Errorf("%w: room %d price cannot be negative", ErrInvalidArgument, number)
	}
	return &Room{
		number:        number,
		pricePerNight: pricePerNight,
		capacity:      capacity,
		description:   description,
		reservations:  make([]Reservation, 0),
	}, nil
}

// Number returns the room number
func (r *Room) Number() int { return r.number }

// PricePerNight returns the nightly price
func (r *Room) PricePerNight() decimal.Decimal { return r.pricePerNight }

// Capacity returns the maximum number of guests
func (r *Room) Capacity() int { return r.capacity }

// Description returns the free-text description
func (r *Room) Description() string { return r.description }

// Level returns the floor the room is on, e.g. 305 is on level 3
func (r *Room) Level() int {
	return r.number / 100
}

// Reservations returns a copy of the reservations in insertion order
func (r *Room) Reservations() []Reservation {
	out := make([]Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

// AddReservation books the room for guests between checkIn and checkOut.
// It returns false without changing the room when the period overlaps an
// existing reservation, and an error when the period itself is invalid.
func (r *Room) AddReservation(guests []Guest, checkIn, checkOut civil.Date) (bool, error) {
	period, err := NewReservationPeriod(checkIn, checkOut)
	if err != nil {
		return false, err
	}

	for _, reservation := range r.reservations {
		if reservation.Period().OverlapsWith(period) {
			return false, nil
		}
	}

	reservation, err := NewReservation(guests, period)
	if err != nil {
		return false, err
	}
	r.reservations = append(r.reservations, reservation)
	return true, nil
}

// CheckIn registers a stay for guests. It fails the same way AddReservation
// does. Guest count against capacity is left to the caller.
func (r *Room) CheckIn(guests []Guest, checkIn, checkOut civil.Date) (bool, error) {
	return r.AddReservation(guests, checkIn, checkOut)
}

// activeIndex returns the index of the reservation containing on. On a
// hand-over day two reservations contain on; the one ending on that day is
// still active until it is checked out.
func (r *Room) activeIndex(on civil.Date) int {
	found := -1
	for i, reservation := range r.reservations {
		if !reservation.Period().Contains(on) {
			continue
		}
		if reservation.Period().End() == on {
			return i
		}
		if found < 0 {
			found = i
		}
	}
	return found
}

// ActiveReservation returns the reservation covering on, if any
func (r *Room) ActiveReservation(on civil.Date) (Reservation, bool) {
	i := r.activeIndex(on)
	if i < 0 {
		return Reservation{}, false
	}
	return r.reservations[i], true
}

// IsOccupied reports whether a reservation covers on
func (r *Room) IsOccupied(on civil.Date) bool {
	return r.activeIndex(on) >= 0
}

// CurrentGuests returns the guests of the stay covering on. The result is
// empty, never nil, when the room is vacant.
func (r *Room) CurrentGuests(on civil.Date) []Guest {
	reservation, ok := r.ActiveReservation(on)
	if !ok {
		return []Guest{}
	}
	return reservation.Guests()
}

// CurrentStay returns the occupancy details for on
func (r *Room) CurrentStay(on civil.Date) (Stay, bool) {
	reservation, ok := r.ActiveReservation(on)
	if !ok {
		return Stay{}, false
	}
	return Stay{
		Guests:          reservation.Guests(),
		CheckIn:         reservation.Period().Start(),
		PlannedCheckOut: reservation.Period().End(),
	}, true
}

// AddGuest adds guest to the stay covering on. It returns false when the
// stay is already at capacity and ErrNullState when there is no stay.
func (r *Room) AddGuest(guest Guest, on civil.Date) (bool, error) {
	i := r.activeIndex(on)
	if i < 0 {
		return false, fmt.Errorf("%w: room %d on %s", ErrNullState, r.number, on)
	}
	if len(r.reservations[i].guests) >= r.capacity {
		return false, nil
	}
	r.reservations[i] = r.reservations[i].withGuest(guest)
	return true, nil
}

// CheckOut ends the stay covering on. The reservation is removed and the
// bill charges every night from its start up to on. Checking out before
// the start costs nothing.
func (r *Room) CheckOut(on civil.Date) (Bill, error) {
	i := r.activeIndex(on)
	if i < 0 {
		return Bill{}, fmt.Errorf("%w: room %d on %s", ErrNoActiveReservation, r.number, on)
	}

	reservation := r.reservations[i]
	r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)

	nights := max(0, on.DaysSince(reservation.Period().Start()))
	return Bill{
		RoomNumber:    r.number,
		Reservation:   reservation,
		PricePerNight: r.pricePerNight,
		Nights:        nights,
		Total:         r.pricePerNight.Mul(decimal.NewFromInt(int64(nights))),
	}, nil
}

// Equal reports whether other is the same room. Rooms are identified by
// number only.
func (r *Room) Equal(other *Room) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.number == other.number
}
