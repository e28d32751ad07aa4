package model

import "time"

// Ticket mirrors the `tickets` table. UserID and EventID are plain id
// columns with no foreign keys; a ticket may outlive the user or event it
// refers to. Price feeds the revenue sum on the analytics report.
type Ticket struct {
	ID          uint64    // tickets.id
	UserID      uint64    // tickets.user_id
	EventID     uint64    // tickets.event_id
	HolderName  string    // tickets.holder_name
	HolderEmail string    // tickets.holder_email
	EventName   string    // tickets.event_name
	EventDate   string    // tickets.event_date (display string as submitted)
	EventTime   string    // tickets.event_time
	Price       float64   // tickets.price
	QR          string    // tickets.qr (encoded payload for the ticket QR code)
	CreatedAt   time.Time // tickets.created_at
}
