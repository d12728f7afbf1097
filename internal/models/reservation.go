package models

import "fmt"

// Reservation is an immutable booking of a guest group for a period
type Reservation struct {
	guests []Guest
	period ReservationPeriod
}

// NewReservation creates a reservation. The guest list is copied; it may be
// empty but not nil. Capacity is not checked here.
func NewReservation(guests []Guest, period ReservationPeriod) (Reservation, error) {
	if guests == nil {
		return Reservation{}, fmt.Errorf("%w: guests cannot be nil", ErrInvalidArgument)
	}
	if period.IsZero() {
		return Reservation{}, fmt.Errorf("%w: period cannot be empty", ErrInvalidArgument)
	}
	return Reservation{guests: copyGuests(guests), period: period}, nil
}

// Guests returns a copy of the guests in insertion order
func (r Reservation) Guests() []Guest {
	return copyGuests(r.guests)
}

// Period returns the reserved period
func (r Reservation) Period() ReservationPeriod {
	return r.period
}

// MainGuest returns the first guest flagged as primary occupant
func (r Reservation) MainGuest() (Guest, bool) {
	for _, g := range r.guests {
		if g.Primary {
			return g, true
		}
	}
	return Guest{}, false
}

// withGuest returns a copy of r with guest appended
func (r Reservation) withGuest(guest Guest) Reservation {
	guests := make([]Guest, 0, len(r.guests)+1)
	guests = append(guests, r.guests...)
	guests = append(guests, guest)
	return Reservation{guests: guests, period: r.period}
}

func copyGuests(guests []Guest) []Guest {
	out := make([]Guest, len(guests))
	copy(out, guests)
	return out
}
