package model

import "time"

// Event mirrors the `events` table. EventDate is nullable in the schema
// because submitted forms may omit it; a nil value sorts an event into
// neither the upcoming nor the past bucket of the analytics report.
//
// Comments holds free-form comment strings serialized as a JSON array in
// the `comments` column.
type Event struct {
	ID          uint64     // events.id
	Owner       string     // events.owner
	Title       string     // events.title
	Description string     // events.description
	OrganizedBy string     // events.organized_by
	EventDate   *time.Time // events.event_date (nullable)
	EventTime   string     // events.event_time
	Location    string     // events.location
	Participants int       // events.participants
	BookedCount int        // events.booked_count
	Income      float64    // events.income
	TicketPrice float64    // events.ticket_price
	Quantity    int        // events.quantity
	Image       string     // events.image (public /uploads path, may be empty)
	Likes       int        // events.likes
	Comments    []string   // events.comments (JSON array)
	CreatedAt   time.Time  // events.created_at
}
