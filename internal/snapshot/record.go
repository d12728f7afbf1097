// Package snapshot converts the hotel directory to and from flat per-room
// records, the format used for import, export and storage
package snapshot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooFewFields is returned for rows that cannot describe a room
	ErrTooFewFields = errors.New("invalid number of fields")
	// ErrNotFound is returned by storage backends that hold no snapshot yet
	ErrNotFound = errors.New("snapshot not found")
	// ErrUnstorableName is returned for guest names the guest column cannot hold
	ErrUnstorableName = errors.New("guest name cannot be stored")
)

// Header is the column layout of the CSV snapshot
var Header = []string{
	"roomNumber",
	"pricePerNight",
	"capacity",
	"description",
	"level",
	"checkInDates",
	"checkOutDates",
	"guests",
}

// minFields is the number of columns a row needs to describe a room
// without reservations
const minFields = 5

// Record is the flat, textual form of one room and its reservations.
// Reservation columns hold semicolon separated lists; guest groups look
// like "<First Last-First Last>".
type Record struct {
	Line          int    `json:"line,omitempty"`
	RoomNumber    string `json:"room_number"`
	PricePerNight string `json:"price_per_night"`
	Capacity      string `json:"capacity"`
	Description   string `json:"description"`
	Level         string `json:"level"`
	CheckInDates  string `json:"check_in_dates"`
	CheckOutDates string `json:"check_out_dates"`
	Guests        string `json:"guests"`
}

// RecordFromFields builds a record from one row of columns. Rows that stop
// before the reservation columns describe a room with no reservations.
func RecordFromFields(line int, fields []string) (Record, error) {
	if len(fields) < minFields {
		return Record{}, fmt.Errorf("%w in line %d: %s", ErrTooFewFields, line, strings.Join(fields, ","))
	}

	column := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	return Record{
		Line:          line,
		RoomNumber:    fields[0],
		PricePerNight: fields[1],
		Capacity:      fields[2],
		Description:   fields[3],
		Level:         fields[4],
		CheckInDates:  column(5),
		CheckOutDates: column(6),
		Guests:        column(7),
	}, nil
}

// Fields returns the record as a row of columns in Header order
func (r Record) Fields() []string {
	return []string{
		r.RoomNumber,
		r.PricePerNight,
		r.Capacity,
		r.Description,
		r.Level,
		r.CheckInDates,
		r.CheckOutDates,
		r.Guests,
	}
}

// HasReservations reports whether all reservation columns are filled
func (r Record) HasReservations() bool {
	return r.CheckInDates != "" && r.CheckOutDates != "" && r.Guests != ""
}
