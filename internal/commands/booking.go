package commands

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/xhamera1/Hotel-app/internal/models"
	"github.com/xhamera1/Hotel-app/internal/service"
	"github.com/xhamera1/Hotel-app/internal/snapshot"
)

// CheckInCommand books a room, asking for the main guest, the dates and any
// additional guests up to the room capacity
func CheckInCommand(svc HotelServicer) Command {
	return func(ctx context.Context, port *Port) bool {
		number, err := readRoomNumber(port)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false
			}
			port.Println("Invalid room number.")
			return true
		}

		room, err := svc.Room(number)
		if err != nil {
			port.Println("Room not found.")
			return true
		}

		port.Println("Enter data of main guest")
		mainGuest, err := readGuest(port, true)
		if err != nil {
			return false
		}

		checkIn, nights, ok := readStay(port)
		if !ok {
			port.Println("Invalid date or duration of stay.")
			return true
		}

		guests := []models.Guest{mainGuest}
		port.Printf("This room has a capacity of %d\n", room.Capacity)
		for len(guests) < room.Capacity {
			answer, err := port.Prompt("Do you want to add an additional guest to this room? yes/no: ")
			if err != nil {
				return false
			}

			switch strings.ToLower(answer) {
			case "no":
			case "yes":
				port.Println("Enter data of additional guest")
				guest, err := readGuest(port, false)
				if err != nil {
					return false
				}
				guests = append(guests, guest)
				port.Printf("Guest added. Current number of guests: %d\n", len(guests))
				continue
			default:
				port.Println("Invalid response. Please enter 'yes' or 'no'.")
				continue
			}
			break
		}

		_, err = svc.CheckIn(ctx, service.CheckInRequest{
			RoomNumber: number,
			Guests:     guests,
			CheckIn:    checkIn,
			Nights:     nights,
		})
		switch {
		case err == nil:
			port.Println("Successfully checked in.")
		case errors.Is(err, service.ErrRoomBooked):
			port.Println("The room is already booked for the requested dates.")
		case errors.Is(err, service.ErrRoomNotFound):
			port.Println("Room not found.")
		case errors.Is(err, service.ErrInvalidRequest):
			port.Printf("Invalid reservation: %v\n", err)
		default:
			port.Printf("An unexpected error occurred: %v\n", err)
		}
		return true
	}
}

// CheckOutCommand ends the current stay in a room and prints its cost
func CheckOutCommand(svc HotelServicer) Command {
	return func(ctx context.Context, port *Port) bool {
		number, err := readRoomNumber(port)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false
			}
			port.Println("Invalid room number.")
			return true
		}

		bill, err := svc.CheckOut(ctx, number)
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			port.Println("Room not found.")
			return true
		case errors.Is(err, models.ErrNoActiveReservation):
			port.Println("No reservation period contains the current date.")
			return true
		case err != nil:
			port.Printf("An unexpected error occurred: %v\n", err)
			return true
		}

		port.Printf("This room costs %s$. You have stayed in this room for %d days. The total cost is %s$.\n",
			snapshot.FormatPrice(bill.PricePerNight), bill.Nights, snapshot.FormatPrice(bill.Total))
		port.Println("Successfully checked out.")
		return true
	}
}

// readGuest asks for a first and last name
func readGuest(port *Port, primary bool) (models.Guest, error) {
	firstName, err := port.Prompt("First name: ")
	if err != nil {
		return models.Guest{}, err
	}
	lastName, err := port.Prompt("Last name: ")
	if err != nil {
		return models.Guest{}, err
	}
	return models.NewGuest(firstName, lastName, primary), nil
}

// readStay asks for the check-in date and the number of nights. A blank
// date means today and is returned as the zero date.
func readStay(port *Port) (civil.Date, int, bool) {
	input, err := port.Prompt("Enter check-in date (YYYY-MM-DD) or leave blank for today: ")
	if err != nil {
		return civil.Date{}, 0, false
	}

	var checkIn civil.Date
	if input != "" {
		checkIn, err = civil.ParseDate(input)
		if err != nil {
			return civil.Date{}, 0, false
		}
	}

	input, err = port.Prompt("Enter duration of stay in days: ")
	if err != nil {
		return civil.Date{}, 0, false
	}
	nights, err := strconv.Atoi(input)
	if err != nil || nights <= 0 {
		return civil.Date{}, 0, false
	}
	return checkIn, nights, true
}
