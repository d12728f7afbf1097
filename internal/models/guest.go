package models

import "fmt"

// Guest is a person staying in a room. Guests have no identity beyond their
// fields, so two guests with the same names and flag are equal.
type Guest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Primary   bool   `json:"primary"`
}

// NewGuest creates a guest
func NewGuest(firstName, lastName string, primary bool) Guest {
	return Guest{FirstName: firstName, LastName: lastName, Primary: primary}
}

// FullName returns "First Last"
func (g Guest) FullName() string {
	return fmt.Sprintf("%s %s", g.FirstName, g.LastName)
}

// Label returns the role of the guest in a reservation
func (g Guest) Label() string {
	if g.Primary {
		return "Main guest"
	}
	return "Guest"
}
