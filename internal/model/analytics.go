package model

import "time"

// RevenuePoint pairs an event's date with its ticket price. The admin
// dashboard charts these raw pairs client-side.
type RevenuePoint struct {
	EventDate   *time.Time
	TicketPrice float64
}

// AnalyticsReport aggregates the counters shown on the admin dashboard.
// It is recomputed from the store on every request.
type AnalyticsReport struct {
	TotalUsers     int64
	TotalEvents    int64
	TotalTickets   int64
	TotalRevenue   float64
	UpcomingEvents int64
	PastEvents     int64
	Events         []RevenuePoint
}
