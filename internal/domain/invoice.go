package domain

import (
	"strings"
	"time"
)

// Invoice status is a free-form label (e.g. "Pending", "Paid", "Cancelled");
// no transition set is enforced.
type Invoice struct {
	Model
	SerialNumber string    `db:"serial_number"`
	TotalAmount  float64   `db:"total_amount"`
	InvoiceDate  time.Time `db:"invoice_date"`
	CustomerID   int64     `db:"customer_id"`
	Status       string    `db:"status"`

	// Populated only by joined reads. Empty when the customer row is
	// absent or soft-deleted at read time.
	CustomerFirstName string `db:"customer_first_name"`
	CustomerLastName  string `db:"customer_last_name"`
}

// CustomerName is the denormalized display name of the related customer.
func (i *Invoice) CustomerName() string {
	return strings.TrimSpace(i.CustomerFirstName + " " + i.CustomerLastName)
}
