package commands

import "context"

// SaveCommand writes the hotel snapshot
func SaveCommand(svc HotelServicer) Command {
	return func(ctx context.Context, port *Port) bool {
		if err := svc.Save(ctx); err != nil {
			port.Println("Error while writing csv file")
			return true
		}
		port.Println("Csv save successfully completed")
		return true
	}
}

// ExitCommand stops the shell
func ExitCommand() Command {
	return func(ctx context.Context, port *Port) bool {
		port.Println("Exiting the application...")
		return false
	}
}
