package api

import (
	"context"

	"github.com/xhamera1/Hotel-app/internal/models"
	"github.com/xhamera1/Hotel-app/internal/service"
)

// HotelServicer defines the interface for booking operations needed by API handlers
type HotelServicer interface {
	Loaded() bool
	Rooms() []service.RoomView
	Room(number int) (service.RoomView, error)
	CheckIn(ctx context.Context, req service.CheckInRequest) (models.Reservation, error)
	AddGuest(ctx context.Context, number int, guest models.Guest) (service.RoomView, error)
	CheckOut(ctx context.Context, number int) (models.Bill, error)
	Save(ctx context.Context) error
}
