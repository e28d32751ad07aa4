package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mehrsa/eventms/internal/model"
)

// StatsRepo computes the admin dashboard aggregates. Every call hits the
// database directly; nothing is cached between requests.
type StatsRepo struct{ DB *sql.DB }

func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{DB: db} }

// Collect builds a full analytics report relative to the supplied time.
// Revenue is the sum of all ticket prices, zero when there are no tickets.
// Events with a NULL date count as neither upcoming nor past.
func (r *StatsRepo) Collect(ctx context.Context, now time.Time) (model.AnalyticsReport, error) {
	var rep model.AnalyticsReport

	if err := r.count(ctx, "SELECT COUNT(*) FROM users", &rep.TotalUsers); err != nil {
		return model.AnalyticsReport{}, err
	}
	if err := r.count(ctx, "SELECT COUNT(*) FROM events", &rep.TotalEvents); err != nil {
		return model.AnalyticsReport{}, err
	}
	if err := r.count(ctx, "SELECT COUNT(*) FROM tickets", &rep.TotalTickets); err != nil {
		return model.AnalyticsReport{}, err
	}
	if err := r.count(ctx, "SELECT COUNT(*) FROM events WHERE event_date >= ?", &rep.UpcomingEvents, now); err != nil {
		return model.AnalyticsReport{}, err
	}
	if err := r.count(ctx, "SELECT COUNT(*) FROM events WHERE event_date < ?", &rep.PastEvents, now); err != nil {
		return model.AnalyticsReport{}, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(price),0) FROM tickets").Scan(&rep.TotalRevenue); err != nil {
		return model.AnalyticsReport{}, err
	}

	rows, err := r.DB.QueryContext(ctx, "SELECT event_date, ticket_price FROM events")
	if err != nil {
		return model.AnalyticsReport{}, err
	}
	defer rows.Close()

	rep.Events = []model.RevenuePoint{}
	for rows.Next() {
		var (
			date  sql.NullTime
			price float64
		)
		if err := rows.Scan(&date, &price); err != nil {
			return model.AnalyticsReport{}, err
		}
		p := model.RevenuePoint{TicketPrice: price}
		if date.Valid {
			t := date.Time
			p.EventDate = &t
		}
		rep.Events = append(rep.Events, p)
	}
	return rep, rows.Err()
}

func (r *StatsRepo) count(ctx context.Context, query string, dest *int64, args ...any) error {
	return r.DB.QueryRowContext(ctx, query, args...).Scan(dest)
}
