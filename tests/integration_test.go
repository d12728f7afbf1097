package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xhamera1/Hotel-app/internal/api"
	"github.com/xhamera1/Hotel-app/internal/commands"
	"github.com/xhamera1/Hotel-app/internal/config"
	"github.com/xhamera1/Hotel-app/internal/repository"
	"github.com/xhamera1/Hotel-app/internal/service"
	"github.com/xhamera1/Hotel-app/internal/snapshot"
)

const fixture = `roomNumber,pricePerNight,capacity,description,level,checkInDates,checkOutDates,guests
101,100.00,2,Double room,1,2024-11-15,2024-11-19,<Jan Kowalski>
102,80.00,1,Single room,1,,,
305,150.00,3,Family suite,3,2024-12-01;2024-12-10,2024-12-05;2024-12-12,<Anna Nowak-Piotr Nowak>;<Ewa Zielinska>
`

var today = civil.Date{Year: 2024, Month: 11, Day: 17}

// TestEventCallback captures room update callbacks
type TestEventCallback struct {
	mu     sync.RWMutex
	events []service.RoomView
}

func (t *TestEventCallback) OnRoomUpdate(view service.RoomView) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, view)
}

func (t *TestEventCallback) GetEvents() []service.RoomView {
	t.mu.RLock()
	defer t.mu.RUnlock()
	events := make([]service.RoomView, len(t.events))
	copy(events, t.events)
	return events
}

// IntegrationTestSuite contains the complete application setup for integration testing
type IntegrationTestSuite struct {
	snapshotPath string
	repo         repository.Repository
	hotelService *service.HotelService
	server       *httptest.Server
	callback     *TestEventCallback
}

func setupIntegrationTest(t *testing.T) *IntegrationTestSuite {
	logger := zaptest.NewLogger(t)

	snapshotPath := filepath.Join(t.TempDir(), "data", "hotel-data.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(snapshotPath), 0o755))
	require.NoError(t, os.WriteFile(snapshotPath, []byte(fixture), 0o600))

	cfg := config.Config{Storage: config.StorageFile, SnapshotPath: snapshotPath}
	repo, err := repository.NewRepository(cfg, logger)
	require.NoError(t, err)

	hotelService := service.NewHotelService(repo, logger, service.WithClock(func() civil.Date { return today }))
	report, err := hotelService.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.Imported)
	require.Empty(t, report.Diagnostics)

	callback := &TestEventCallback{}
	hotelService.RegisterUpdateCallback(callback.OnRoomUpdate)

	server := httptest.NewServer(api.NewRouter(hotelService, nil, logger))
	t.Cleanup(server.Close)

	return &IntegrationTestSuite{
		snapshotPath: snapshotPath,
		repo:         repo,
		hotelService: hotelService,
		server:       server,
		callback:     callback,
	}
}

func (suite *IntegrationTestSuite) post(t *testing.T, path string, body interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(suite.server.URL+path, "application/json", &buf)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (suite *IntegrationTestSuite) shell(t *testing.T, input string) string {
	var out bytes.Buffer
	shell := commands.NewShell(
		commands.NewHotelRegistry(suite.hotelService),
		commands.NewPort(strings.NewReader(input), &out),
		zaptest.NewLogger(t),
	)
	require.NoError(t, shell.Run(context.Background()))
	return out.String()
}

// TestCompleteWorkflow drives the shell and the HTTP API over the same hotel
func TestCompleteWorkflow(t *testing.T) {
	suite := setupIntegrationTest(t)

	t.Run("Imported rooms are served", func(t *testing.T) {
		resp, err := http.Get(suite.server.URL + "/api/rooms")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rooms []service.RoomView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rooms))
		require.Len(t, rooms, 3)

		assert.Equal(t, 101, rooms[0].Number)
		assert.True(t, rooms[0].Occupied, "the imported stay covers today")
		assert.Equal(t, "Jan Kowalski", rooms[0].Guests[0].FullName())
		assert.False(t, rooms[1].Occupied)
		assert.Len(t, rooms[2].Reservations, 2)
		assert.Equal(t, 3, suite.hotelService.FloorsCount())
	})

	t.Run("Shell shows imported reservations", func(t *testing.T) {
		out := suite.shell(t, "view\n305\nexit\n")

		assert.Contains(t, out, "Guest: Anna Nowak\nGuest: Piotr Nowak\nReservation period: 2024-12-01 to 2024-12-05\n")
		assert.Contains(t, out, "Guest: Ewa Zielinska\nReservation period: 2024-12-10 to 2024-12-12\n")
	})

	t.Run("Check in over HTTP", func(t *testing.T) {
		resp := suite.post(t, "/api/rooms/102/checkin", map[string]interface{}{
			"guests": []map[string]string{{"first_name": "Marek", "last_name": "Lis"}},
			"nights": 2,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		events := suite.callback.GetEvents()
		require.Len(t, events, 1)
		assert.Equal(t, 102, events[0].Number)
		assert.True(t, events[0].Occupied)
	})

	t.Run("Conflicting check in from the shell", func(t *testing.T) {
		out := suite.shell(t, "checkin\n102\nOla\nLis\n2024-11-18\n1\nexit\n")

		assert.Contains(t, out, "The room is already booked for the requested dates.")
		assert.Len(t, suite.callback.GetEvents(), 1)
	})

	t.Run("Check out from the shell", func(t *testing.T) {
		out := suite.shell(t, "checkout\n101\nexit\n")

		assert.Contains(t, out, "This room costs 100.00$. You have stayed in this room for 2 days. The total cost is 200.00$.")

		events := suite.callback.GetEvents()
		require.Len(t, events, 2)
		assert.Equal(t, 101, events[1].Number)
		assert.False(t, events[1].Occupied)
	})

	t.Run("Check out over HTTP without a stay", func(t *testing.T) {
		resp := suite.post(t, "/api/rooms/101/checkout", nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Snapshot is written back", func(t *testing.T) {
		resp := suite.post(t, "/api/snapshot", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data, err := os.ReadFile(suite.snapshotPath)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 4)

		assert.Equal(t, "101,100.00,2,Double room,1,,,", lines[1])
		assert.Equal(t, "102,80.00,1,Single room,1,2024-11-17,2024-11-19,<Marek Lis>", lines[2])
		assert.Equal(t, strings.Split(fixture, "\n")[3], lines[3])
	})
}

// TestSnapshotRoundTripAcrossBackends loads the fixture and saves it through
// every backend, checking that the export stays identical
func TestSnapshotRoundTripAcrossBackends(t *testing.T) {
	records, diagnostics, err := snapshot.ReadCSV(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Empty(t, diagnostics)

	mr := miniredis.RunT(t)
	configs := map[string]config.Config{
		"file":   {Storage: config.StorageFile, SnapshotPath: filepath.Join(t.TempDir(), "hotel-data.csv")},
		"memory": {Storage: config.StorageMemory},
		"redis": {Storage: config.StorageRedis, Redis: config.RedisConfig{
			Host:        mr.Host(),
			Port:        mr.Port(),
			KeyPrefix:   "hotel:",
			SnapshotTTL: time.Hour,
		}},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			repo, err := repository.NewRepository(cfg, logger)
			require.NoError(t, err)
			if closer, ok := repo.(interface{ Close() error }); ok {
				defer closer.Close()
			}

			ctx := context.Background()
			require.NoError(t, repo.SaveRecords(ctx, records))

			svc := service.NewHotelService(repo, logger, service.WithClock(func() civil.Date { return today }))
			_, err = svc.Load(ctx)
			require.NoError(t, err)
			require.NoError(t, svc.Save(ctx))

			saved, err := repo.LoadRecords(ctx)
			require.NoError(t, err)
			require.Len(t, saved, len(records))
			for i := range records {
				assert.Equal(t, records[i].Fields(), saved[i].Fields())
			}
		})
	}
}
