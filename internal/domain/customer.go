package domain

import "strings"

type Customer struct {
	Model
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	Email          string  `db:"email"`
	IdentityNumber string  `db:"identity_number"`
	Balance        float64 `db:"balance"`
	PhoneNumber    string  `db:"phone_number"`
}

// FullName is the display name shown on invoices.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
