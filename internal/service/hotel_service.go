// Package service provides the booking operations shared by the shell and
// the HTTP API
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/xhamera1/Hotel-app/internal/models"
	"github.com/xhamera1/Hotel-app/internal/repository"
	"github.com/xhamera1/Hotel-app/internal/snapshot"
	"github.com/xhamera1/Hotel-app/internal/utils"
	"go.uber.org/zap"
)

// RoomUpdateCallback is called with the new state of a room after a
// successful booking change
type RoomUpdateCallback func(RoomView)

// CheckInRequest describes a new stay
type CheckInRequest struct {
	RoomNumber int
	Guests     []models.Guest
	// CheckIn defaults to today when zero
	CheckIn civil.Date
	Nights  int
}

// Option configures a HotelService
type Option func(*HotelService)

// WithClock replaces the source of today's date
func WithClock(clock func() civil.Date) Option {
	return func(s *HotelService) {
		s.clock = clock
	}
}

// Today returns the current date in local time
func Today() civil.Date {
	return civil.DateOf(time.Now())
}

// HotelService guards a hotel directory and persists it through a
// repository. Every method is safe for concurrent use.
type HotelService struct {
	hotel           *models.Hotel
	repo            repository.Repository
	logger          *zap.Logger
	clock           func() civil.Date
	mu              sync.Mutex
	loaded          bool
	updateCallbacks []RoomUpdateCallback
}

// NewHotelService creates a service with an empty hotel
func NewHotelService(repo repository.Repository, logger *zap.Logger, opts ...Option) *HotelService {
	s := &HotelService{
		hotel:           models.NewHotel(),
		repo:            repo,
		logger:          logger,
		clock:           Today,
		updateCallbacks: make([]RoomUpdateCallback, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterUpdateCallback registers a callback function to be called when room data changes
func (s *HotelService) RegisterUpdateCallback(callback RoomUpdateCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// notifyUpdate calls all registered callbacks. It must be called without
// holding the lock.
func (s *HotelService) notifyUpdate(view RoomView) {
	s.mu.Lock()
	callbacks := make([]RoomUpdateCallback, len(s.updateCallbacks))
	copy(callbacks, s.updateCallbacks)
	s.mu.Unlock()

	for _, callback := range callbacks {
		callback(view)
	}
}

// Today returns the date the service treats as today
func (s *HotelService) Today() civil.Date {
	return s.clock()
}

// Load replaces the hotel with the stored snapshot. A missing snapshot
// leaves an empty hotel and is not an error.
func (s *HotelService) Load(ctx context.Context) (snapshot.Report, error) {
	records, err := s.repo.LoadRecords(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("No snapshot found, starting with an empty hotel")
			s.mu.Lock()
			s.loaded = true
			s.mu.Unlock()
			return snapshot.Report{Diagnostics: make([]snapshot.Diagnostic, 0)}, nil
		}
		return snapshot.Report{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	hotel := models.NewHotel()
	report := snapshot.Decode(records, hotel, s.logger)

	s.mu.Lock()
	s.hotel = hotel
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("Snapshot loaded",
		zap.Int("rooms", report.Imported),
		zap.Int("floors", hotel.FloorsCount()),
		zap.Int("problems", len(report.Diagnostics)))
	return report, nil
}

// Loaded reports whether Load has completed at least once
func (s *HotelService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Save writes the current hotel to the repository
func (s *HotelService) Save(ctx context.Context) error {
	s.mu.Lock()
	records := snapshot.Encode(s.hotel)
	s.mu.Unlock()

	if err := s.repo.SaveRecords(ctx, records); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Info("Snapshot saved", zap.Int("rooms", len(records)))
	return nil
}

// AddRoom adds room to the hotel. It returns false when the number is
// already taken, in which case the existing room is kept.
func (s *HotelService) AddRoom(room *models.Room) bool {
	if room == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.hotel.RoomByNumber(room.Number()); exists {
		return false
	}
	s.hotel.AddRoom(room)
	return true
}

// Rooms returns a view of every room in directory order
func (s *HotelService) Rooms() []RoomView {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.clock()
	rooms := s.hotel.AllRooms()
	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, newRoomView(room, today))
	}
	return views
}

// Room returns a view of a single room
func (s *HotelService) Room(number int) (RoomView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.hotel.RoomByNumber(number)
	if !ok {
		return RoomView{}, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}
	return newRoomView(room, s.clock()), nil
}

// FloorsCount returns the highest floor of any room
func (s *HotelService) FloorsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotel.FloorsCount()
}

// CheckIn books a room for the requested guests and nights. The first guest
// is marked as the main guest when none is.
func (s *HotelService) CheckIn(ctx context.Context, req CheckInRequest) (models.Reservation, error) {
	guests, err := validateGuests(req.Guests)
	if err != nil {
		return models.Reservation{}, err
	}
	if req.Nights <= 0 {
		return models.Reservation{}, fmt.Errorf("%w: nights must be positive, got %d", ErrInvalidRequest, req.Nights)
	}

	s.mu.Lock()
	room, ok := s.hotel.RoomByNumber(req.RoomNumber)
	if !ok {
		s.mu.Unlock()
		return models.Reservation{}, fmt.Errorf("%w: %d", ErrRoomNotFound, req.RoomNumber)
	}
	if len(guests) > room.Capacity() {
		s.mu.Unlock()
		return models.Reservation{}, fmt.Errorf("%w: room %d holds %d guests, got %d",
			ErrInvalidRequest, room.Number(), room.Capacity(), len(guests))
	}

	checkIn := req.CheckIn
	if checkIn == (civil.Date{}) {
		checkIn = s.clock()
	}
	checkOut := checkIn.AddDays(req.Nights)

	booked, err := room.CheckIn(guests, checkIn, checkOut)
	if err != nil {
		s.mu.Unlock()
		return models.Reservation{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if !booked {
		s.mu.Unlock()
		return models.Reservation{}, fmt.Errorf("%w: room %d from %s to %s", ErrRoomBooked, room.Number(), checkIn, checkOut)
	}

	reservation := findReservation(room, checkIn)
	view := newRoomView(room, s.clock())
	s.mu.Unlock()

	mainGuest, _ := reservation.MainGuest()
	s.logger.Info("Guests checked in",
		zap.Int("room", room.Number()),
		zap.String("main_guest", utils.SanitizeLogString(mainGuest.FullName())),
		zap.Int("guests", len(guests)),
		zap.String("period", reservation.Period().String()))

	s.notifyUpdate(view)
	return reservation, nil
}

// AddGuest adds a guest to the stay that covers today
func (s *HotelService) AddGuest(ctx context.Context, number int, guest models.Guest) (RoomView, error) {
	if err := checkGuest(guest); err != nil {
		return RoomView{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	s.mu.Lock()
	room, ok := s.hotel.RoomByNumber(number)
	if !ok {
		s.mu.Unlock()
		return RoomView{}, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}

	today := s.clock()
	added, err := room.AddGuest(guest, today)
	if err != nil {
		s.mu.Unlock()
		return RoomView{}, err
	}
	if !added {
		s.mu.Unlock()
		return RoomView{}, fmt.Errorf("%w: room %d", ErrRoomFull, number)
	}
	view := newRoomView(room, today)
	s.mu.Unlock()

	s.logger.Info("Guest added", zap.Int("room", number), zap.String("guest", utils.SanitizeLogString(guest.FullName())))
	s.notifyUpdate(view)
	return view, nil
}

// CheckOut ends the stay covering today and returns its bill
func (s *HotelService) CheckOut(ctx context.Context, number int) (models.Bill, error) {
	s.mu.Lock()
	room, ok := s.hotel.RoomByNumber(number)
	if !ok {
		s.mu.Unlock()
		return models.Bill{}, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}

	today := s.clock()
	bill, err := room.CheckOut(today)
	if err != nil {
		s.mu.Unlock()
		return models.Bill{}, err
	}
	view := newRoomView(room, today)
	s.mu.Unlock()

	s.logger.Info("Guests checked out",
		zap.Int("room", number),
		zap.Int("nights", bill.Nights),
		zap.String("total", bill.Total.StringFixed(2)))

	s.notifyUpdate(view)
	return bill, nil
}

func validateGuests(guests []models.Guest) ([]models.Guest, error) {
	if len(guests) == 0 {
		return nil, fmt.Errorf("%w: at least one guest is required", ErrInvalidRequest)
	}

	out := make([]models.Guest, len(guests))
	hasPrimary := false
	for i, guest := range guests {
		if err := checkGuest(guest); err != nil {
			return nil, fmt.Errorf("%w: guest %d: %w", ErrInvalidRequest, i+1, err)
		}
		out[i] = guest
		hasPrimary = hasPrimary || guest.Primary
	}
	if !hasPrimary {
		out[0].Primary = true
	}
	return out, nil
}

// checkGuest rejects names that would be lost or split when the snapshot is
// read back
func checkGuest(guest models.Guest) error {
	if err := snapshot.CheckGuestName(guest.FirstName); err != nil {
		return fmt.Errorf("first name: %w", err)
	}
	if err := snapshot.CheckGuestName(guest.LastName); err != nil {
		return fmt.Errorf("last name: %w", err)
	}
	return nil
}

// findReservation returns the reservation starting on checkIn. Reservations
// in a room never overlap, so there is at most one.
func findReservation(room *models.Room, checkIn civil.Date) models.Reservation {
	for _, reservation := range room.Reservations() {
		if reservation.Period().Start() == checkIn {
			return reservation
		}
	}
	return models.Reservation{}
}
