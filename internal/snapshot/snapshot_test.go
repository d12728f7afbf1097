package snapshot_test

import (
	"bytes"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhamera1/Hotel-app/internal/models"
	"github.com/xhamera1/Hotel-app/internal/snapshot"
	"go.uber.org/zap/zaptest"
)

const header = "roomNumber,pricePerNight,capacity,description,level,checkInDates,checkOutDates,guests\n"

func importCSV(t *testing.T, data string) (*models.Hotel, snapshot.Report, []snapshot.Diagnostic) {
	t.Helper()
	records, readDiagnostics, err := snapshot.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)

	hotel := models.NewHotel()
	report := snapshot.Decode(records, hotel, zaptest.NewLogger(t))
	return hotel, report, readDiagnostics
}

func TestImportExportRoundTrip(t *testing.T) {
	data := header + "101,100.00,2,Double room,1,2024-11-15,2024-11-19,<Jan Kowalski>\n"

	hotel, report, diagnostics := importCSV(t, data)
	assert.Empty(t, diagnostics)
	assert.Empty(t, report.Diagnostics)
	assert.Equal(t, 1, report.Imported)

	room, ok := hotel.RoomByNumber(101)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("100.00").Equal(room.PricePerNight()))
	assert.Equal(t, 2, room.Capacity())

	reservations := room.Reservations()
	require.Len(t, reservations, 1)
	guests := reservations[0].Guests()
	require.Len(t, guests, 1)
	assert.Equal(t, "Kowalski", guests[0].LastName)
	assert.Equal(t, civil.Date{Year: 2024, Month: 11, Day: 15}, reservations[0].Period().Start())

	records := snapshot.Encode(hotel)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].Level)
	assert.Equal(t, "2024-11-15", records[0].CheckInDates)
	assert.Equal(t, "2024-11-19", records[0].CheckOutDates)
	assert.Equal(t, "<Jan Kowalski>", records[0].Guests)

	var buf bytes.Buffer
	require.NoError(t, snapshot.WriteCSV(&buf, records))
	assert.Equal(t, data, buf.String())
}

func TestImportMultipleReservations(t *testing.T) {
	data := header +
		"201,250.50,3,Suite,2,2024-11-01;2024-11-10,2024-11-05;2024-11-12,<Jan Kowalski-Anna Nowak>;<Piotr Zielinski>\n"

	hotel, report, _ := importCSV(t, data)
	assert.Empty(t, report.Diagnostics)

	room, ok := hotel.RoomByNumber(201)
	require.True(t, ok)
	reservations := room.Reservations()
	require.Len(t, reservations, 2)
	assert.Len(t, reservations[0].Guests(), 2)
	assert.Equal(t, "Nowak", reservations[0].Guests()[1].LastName)
	assert.False(t, reservations[0].Guests()[0].Primary)

	record := snapshot.EncodeRoom(room)
	assert.Equal(t, "2024-11-01;2024-11-10", record.CheckInDates)
	assert.Equal(t, "2024-11-05;2024-11-12", record.CheckOutDates)
	assert.Equal(t, "<Jan Kowalski-Anna Nowak>;<Piotr Zielinski>", record.Guests)
	assert.Equal(t, "250.50", record.PricePerNight)
}

func TestImportMismatchedReservationCounts(t *testing.T) {
	data := header + "101,100.00,2,Double room,1,2024-11-15;2024-11-20,2024-11-19,<Jan Kowalski>\n"

	hotel, report, _ := importCSV(t, data)
	require.Len(t, report.Diagnostics, 1)
	assert.Contains(t, report.Diagnostics[0].Reason, "mismatch")

	room, ok := hotel.RoomByNumber(101)
	require.True(t, ok, "the room is kept without reservations")
	assert.Empty(t, room.Reservations())
}

func TestImportOverlappingReservationsDiscarded(t *testing.T) {
	data := header + "101,100.00,2,Double room,1,2024-11-15;2024-11-17,2024-11-19;2024-11-20,<Jan Kowalski>;<Anna Nowak>\n"

	hotel, report, _ := importCSV(t, data)
	require.Len(t, report.Diagnostics, 1)
	assert.Contains(t, report.Diagnostics[0].Reason, "overlapping")

	room, ok := hotel.RoomByNumber(101)
	require.True(t, ok)
	assert.Empty(t, room.Reservations())
}

func TestImportSkipsBadRecords(t *testing.T) {
	data := header +
		"abc,100.00,2,Bad number,1,,,\n" +
		"102,cheap,2,Bad price,1,,,\n" +
		"103,100.00,two,Bad capacity,1,,,\n" +
		"104,100.00,2,Bad date,1,2024-13-01,2024-11-19,<Jan Kowalski>\n" +
		"105,100.00,2,Bad period,1,2024-11-19,2024-11-15,<Jan Kowalski>\n" +
		"106,100.00\n" +
		"107,90,1,Good room,1\n" +
		"108,90,1,Good room,1,,,\n"

	hotel, report, diagnostics := importCSV(t, data)

	require.Len(t, diagnostics, 1, "short row is reported while reading")
	assert.Equal(t, 7, diagnostics[0].Line)

	assert.Len(t, report.Diagnostics, 5)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, []int{107, 108}, hotel.RoomNumbers())
}

func TestImportDuplicateRoomKeepsFirst(t *testing.T) {
	data := header +
		"101,100.00,2,First,1,,,\n" +
		"101,500.00,4,Second,1,,,\n"

	hotel, report, _ := importCSV(t, data)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Diagnostics, 1)

	room, ok := hotel.RoomByNumber(101)
	require.True(t, ok)
	assert.Equal(t, "First", room.Description())
	assert.Equal(t, 1, hotel.RoomsCount())
}

func TestImportRecomputesLevel(t *testing.T) {
	hotel, _, _ := importCSV(t, header+"305,100.00,2,Top,9,,,\n")

	assert.Equal(t, 3, hotel.FloorsCount())
	assert.Equal(t, "3", snapshot.Encode(hotel)[0].Level)
}

func TestParseGuests(t *testing.T) {
	guests := snapshot.ParseGuests("<Jan Kowalski-Solo-Anna  Nowak Extra->")

	require.Len(t, guests, 2)
	assert.Equal(t, models.NewGuest("Jan", "Kowalski", false), guests[0])
	assert.Equal(t, models.NewGuest("Anna", "Nowak", false), guests[1])

	assert.Empty(t, snapshot.ParseGuests("<>"))
}

func TestCheckGuestName(t *testing.T) {
	for _, name := range []string{"Jan", "Zoë", "O'Brien", "Kowalski"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, snapshot.CheckGuestName(name))

			group := "<" + name + " Nowak>"
			guests := snapshot.ParseGuests(group)
			require.Len(t, guests, 1)
			assert.Equal(t, name, guests[0].FirstName)
		})
	}

	for _, name := range []string{"", " ", "Anna-Maria", "Van Dyke", "<Jan>", "Jan;Anna", "Tab\tName"} {
		t.Run("reject "+name, func(t *testing.T) {
			assert.ErrorIs(t, snapshot.CheckGuestName(name), snapshot.ErrUnstorableName)
		})
	}
}

func TestEncodeEmptyGuestGroup(t *testing.T) {
	room, err := models.NewRoom(101, decimal.NewFromInt(100), 2, "Empty")
	require.NoError(t, err)
	_, err = room.AddReservation([]models.Guest{}, civil.Date{Year: 2024, Month: 1, Day: 1}, civil.Date{Year: 2024, Month: 1, Day: 3})
	require.NoError(t, err)

	record := snapshot.EncodeRoom(room)
	assert.Equal(t, "<>", record.Guests)
	assert.Equal(t, "100.00", record.PricePerNight)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "100.00", snapshot.FormatPrice(decimal.RequireFromString("100")))
	assert.Equal(t, "99.50", snapshot.FormatPrice(decimal.RequireFromString("99.5")))
	assert.Equal(t, "0.125", snapshot.FormatPrice(decimal.RequireFromString("0.125")))
}

func TestRecordFromFields(t *testing.T) {
	_, err := snapshot.RecordFromFields(3, []string{"101", "100"})
	assert.ErrorIs(t, err, snapshot.ErrTooFewFields)

	record, err := snapshot.RecordFromFields(4, []string{"101", "100", "2", "Room", "1", "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, 4, record.Line)
	assert.Equal(t, "2024-01-01", record.CheckInDates)
	assert.False(t, record.HasReservations())
	assert.Len(t, record.Fields(), len(snapshot.Header))
}
