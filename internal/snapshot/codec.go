package snapshot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/xhamera1/Hotel-app/internal/models"
	"github.com/xhamera1/Hotel-app/internal/utils"
	"go.uber.org/zap"
)

const (
	listSeparator  = ";"
	guestSeparator = "-"
)

// Diagnostic describes a problem found in one record during import
type Diagnostic struct {
	Line       int    `json:"line"`
	RoomNumber string `json:"room_number,omitempty"`
	Reason     string `json:"reason"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Reason)
}

// Report summarizes an import
type Report struct {
	Imported    int          `json:"imported"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Encode converts every room of hotel into a record, in directory order
func Encode(hotel *models.Hotel) []Record {
	rooms := hotel.AllRooms()
	records := make([]Record, 0, len(rooms))
	for _, room := range rooms {
		records = append(records, EncodeRoom(room))
	}
	return records
}

// EncodeRoom converts a single room into a record
func EncodeRoom(room *models.Room) Record {
	reservations := room.Reservations()
	checkIns := make([]string, 0, len(reservations))
	checkOuts := make([]string, 0, len(reservations))
	groups := make([]string, 0, len(reservations))

	for _, reservation := range reservations {
		checkIns = append(checkIns, reservation.Period().Start().String())
		checkOuts = append(checkOuts, reservation.Period().End().String())

		names := make([]string, 0)
		for _, guest := range reservation.Guests() {
			names = append(names, guest.FullName())
		}
		groups = append(groups, "<"+strings.Join(names, guestSeparator)+">")
	}

	return Record{
		RoomNumber:    strconv.Itoa(room.Number()),
		PricePerNight: FormatPrice(room.PricePerNight()),
		Capacity:      strconv.Itoa(room.Capacity()),
		Description:   room.Description(),
		Level:         strconv.Itoa(room.Level()),
		CheckInDates:  strings.Join(checkIns, listSeparator),
		CheckOutDates: strings.Join(checkOuts, listSeparator),
		Guests:        strings.Join(groups, listSeparator),
	}
}

// FormatPrice renders a price with at least two fraction digits
func FormatPrice(price decimal.Decimal) string {
	if price.Exponent() < -2 {
		return price.String()
	}
	return price.StringFixed(2)
}

// Decode adds the rooms described by records to hotel. A record that cannot
// be parsed is skipped with a diagnostic and the remaining records are still
// imported. The level column is recomputed from the room number and never
// read.
func Decode(records []Record, hotel *models.Hotel, logger *zap.Logger) Report {
	report := Report{Diagnostics: make([]Diagnostic, 0)}

	note := func(record Record, reason string) {
		d := diagnostic(record, reason)
		report.Diagnostics = append(report.Diagnostics, d)
		logger.Warn("Snapshot record problem",
			zap.Int("line", d.Line),
			zap.String("room", utils.SanitizeLogString(record.RoomNumber)),
			zap.String("reason", utils.SanitizeLogString(d.Reason)))
	}

	for _, record := range records {
		room, warnings, err := decodeRecord(record)
		for _, warning := range warnings {
			note(record, warning)
		}
		if err != nil {
			note(record, "record skipped: "+err.Error())
			continue
		}

		if _, exists := hotel.RoomByNumber(room.Number()); exists {
			note(record, "duplicate room number ignored")
			continue
		}

		hotel.AddRoom(room)
		report.Imported++
	}

	return report
}

func diagnostic(record Record, reason string) Diagnostic {
	return Diagnostic{Line: record.Line, RoomNumber: record.RoomNumber, Reason: reason}
}

// decodeRecord parses one record. Warnings describe data that was dropped
// while the room itself was kept.
func decodeRecord(record Record) (*models.Room, []string, error) {
	number, err := strconv.Atoi(strings.TrimSpace(record.RoomNumber))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid room number %q", record.RoomNumber)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(record.PricePerNight))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid price %q", record.PricePerNight)
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(record.Capacity))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid capacity %q", record.Capacity)
	}

	room, err := models.NewRoom(number, price, capacity, record.Description)
	if err != nil {
		return nil, nil, err
	}

	if !record.HasReservations() {
		return room, nil, nil
	}

	checkIns := strings.Split(record.CheckInDates, listSeparator)
	checkOuts := strings.Split(record.CheckOutDates, listSeparator)
	groups := strings.Split(record.Guests, listSeparator)

	if len(checkIns) != len(checkOuts) || len(checkIns) != len(groups) {
		return room, []string{"mismatch in the number of check-in dates, check-out dates and guest groups"}, nil
	}

	type pending struct {
		guests []models.Guest
		period models.ReservationPeriod
	}
	parsed := make([]pending, 0, len(checkIns))

	for i := range checkIns {
		checkIn, err := civil.ParseDate(strings.TrimSpace(checkIns[i]))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid check-in date %q", checkIns[i])
		}
		checkOut, err := civil.ParseDate(strings.TrimSpace(checkOuts[i]))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid check-out date %q", checkOuts[i])
		}
		period, err := models.NewReservationPeriod(checkIn, checkOut)
		if err != nil {
			return nil, nil, err
		}
		parsed = append(parsed, pending{guests: ParseGuests(groups[i]), period: period})
	}

	for i := range parsed {
		for j := i + 1; j < len(parsed); j++ {
			if parsed[i].period.OverlapsWith(parsed[j].period) {
				return room, []string{fmt.Sprintf("overlapping reservations %s and %s discarded", parsed[i].period, parsed[j].period)}, nil
			}
		}
	}

	for _, p := range parsed {
		if _, err := room.AddReservation(p.guests, p.period.Start(), p.period.End()); err != nil {
			return nil, nil, err
		}
	}
	return room, nil, nil
}

// CheckGuestName returns ErrUnstorableName when name would not survive a
// round trip through the guest column: it must be a single word free of the
// group and list separators.
func CheckGuestName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrUnstorableName)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: %q contains whitespace", ErrUnstorableName, name)
	}
	if strings.ContainsAny(name, "<>"+guestSeparator+listSeparator) {
		return fmt.Errorf("%w: %q contains one of < > %s %s", ErrUnstorableName, name, guestSeparator, listSeparator)
	}
	return nil
}

// ParseGuests parses a guest group such as "<Jan Kowalski-Anna Nowak>".
// Tokens with fewer than two name parts are dropped.
func ParseGuests(group string) []models.Guest {
	group = strings.NewReplacer("<", "", ">", "").Replace(group)

	guests := make([]models.Guest, 0)
	for _, token := range strings.Split(group, guestSeparator) {
		parts := strings.Fields(token)
		if len(parts) < 2 {
			continue
		}
		guests = append(guests, models.NewGuest(parts[0], parts[1], false))
	}
	return guests
}
