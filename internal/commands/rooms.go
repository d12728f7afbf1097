package commands

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/xhamera1/Hotel-app/internal/service"
	"github.com/xhamera1/Hotel-app/internal/snapshot"
)

// errInvalidRoomNumber is returned by readRoomNumber for non-numeric input
var errInvalidRoomNumber = errors.New("invalid room number")

// readRoomNumber asks for a room number
func readRoomNumber(port *Port) (int, error) {
	input, err := port.Prompt("Enter room number: ")
	if err != nil {
		return 0, err
	}
	number, err := strconv.Atoi(input)
	if err != nil {
		return 0, errInvalidRoomNumber
	}
	return number, nil
}

// PricesCommand prints the nightly price of every room
func PricesCommand(svc HotelServicer) Command {
	return func(ctx context.Context, port *Port) bool {
		for _, room := range svc.Rooms() {
			port.Printf("Room %s number %d costs %s$ per night.\n",
				room.Description, room.Number, snapshot.FormatPrice(room.PricePerNight))
		}
		return true
	}
}

// ViewCommand prints the details and reservations of one room
func ViewCommand(svc HotelServicer) Command {
	return func(ctx context.Context, port *Port) bool {
		number, err := readRoomNumber(port)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false
			}
			port.Println("Invalid room number")
			return true
		}

		room, err := svc.Room(number)
		if err != nil {
			port.Println("Room not found.")
			return true
		}

		printRoom(port, room)
		if len(room.Reservations) == 0 {
			port.Println("No reservations found for this room.")
			return true
		}
		port.Println("Reservations:")
		printReservations(port, room)
		return true
	}
}

// ListCommand prints every room with its reservations
func ListCommand(svc HotelServicer) Command {
	return func(ctx context.Context, port *Port) bool {
		for _, room := range svc.Rooms() {
			port.Println()
			printRoom(port, room)
			if !room.Occupied {
				port.Println("The room is not occupied at the moment.")
			}
			if len(room.Reservations) > 0 {
				port.Println("Reservation details:")
				printReservations(port, room)
			}
		}
		return true
	}
}

func printRoom(port *Port, room service.RoomView) {
	port.Printf("Room number: %d\n", room.Number)
	port.Printf("Room description: %s\n", room.Description)
	port.Printf("Room price per night: %s\n", snapshot.FormatPrice(room.PricePerNight))
	port.Printf("Room capacity: %d\n", room.Capacity)
}

func printReservations(port *Port, room service.RoomView) {
	for _, reservation := range room.Reservations {
		port.Println("Guests in the reservation:")
		for _, guest := range reservation.Guests {
			port.Printf("%s: %s\n", guest.Label(), guest.FullName())
		}
		port.Printf("Reservation period: %s to %s\n", reservation.CheckIn, reservation.CheckOut)
	}
}
