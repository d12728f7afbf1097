package models

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// ReservationPeriod is an immutable date range whose start is strictly
// before its end
type ReservationPeriod struct {
	start civil.Date
	end   civil.Date
}

// NewReservationPeriod validates and creates a period
func NewReservationPeriod(start, end civil.Date) (ReservationPeriod, error) {
	if start == (civil.Date{}) || end == (civil.Date{}) {
		return ReservationPeriod{}, fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidPeriod)
	}
	if !start.IsValid() || !end.IsValid() {
		return ReservationPeriod{}, fmt.Errorf("%w: %s to %s is not a valid calendar range", ErrInvalidPeriod, start, end)
	}
	if !start.Before(end) {
		return ReservationPeriod{}, fmt.Errorf("%w: check-in %s must be before check-out %s", ErrInvalidPeriod, start, end)
	}
	return ReservationPeriod{start: start, end: end}, nil
}

// Start returns the check-in date
func (p ReservationPeriod) Start() civil.Date {
	return p.start
}

// End returns the check-out date
func (p ReservationPeriod) End() civil.Date {
	return p.end
}

// IsZero reports whether p was never constructed
func (p ReservationPeriod) IsZero() bool {
	return p == ReservationPeriod{}
}

// OverlapsWith reports whether the two periods share at least one night.
// A period ending on the day another begins does not overlap it, so a
// checkout and a new check-in on the same day are both allowed.
func (p ReservationPeriod) OverlapsWith(other ReservationPeriod) bool {
	return p.start.Before(other.end) && p.end.After(other.start)
}

// Contains reports whether date falls within the period, both ends included
func (p ReservationPeriod) Contains(date civil.Date) bool {
	return !date.Before(p.start) && !date.After(p.end)
}

// Nights returns the number of nights between start and end
func (p ReservationPeriod) Nights() int {
	return p.end.DaysSince(p.start)
}

// Equal compares periods by their dates
func (p ReservationPeriod) Equal(other ReservationPeriod) bool {
	return p == other
}

func (p ReservationPeriod) String() string {
	return fmt.Sprintf("from %s to %s", p.start, p.end)
}
