// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketPurchasedEvent is published after a ticket record is created. It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type TicketPurchasedEvent struct {
	TicketID    uint64  `json:"ticket_id"`
	UserID      uint64  `json:"user_id"`
	EventID     uint64  `json:"event_id"`
	EventName   string  `json:"event_name"`
	HolderName  string  `json:"holder_name"`
	HolderEmail string  `json:"holder_email"`
	Price       float64 `json:"price"`
	PurchasedAt string  `json:"purchased_at"`
}
