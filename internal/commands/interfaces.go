package commands

import (
	"context"

	"github.com/xhamera1/Hotel-app/internal/models"
	"github.com/xhamera1/Hotel-app/internal/service"
)

// HotelServicer defines the booking operations the shell needs
type HotelServicer interface {
	Rooms() []service.RoomView
	Room(number int) (service.RoomView, error)
	CheckIn(ctx context.Context, req service.CheckInRequest) (models.Reservation, error)
	CheckOut(ctx context.Context, number int) (models.Bill, error)
	Save(ctx context.Context) error
}
