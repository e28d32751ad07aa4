package handler

import (
	"context"
	"time"

	"github.com/mehrsa/eventms/internal/model"
)

// The store interfaces below are what handlers actually depend on. The
// repository package provides the MySQL implementations; tests substitute
// mocks.

// UserStore persists and resolves user records.
type UserStore interface {
	Create(ctx context.Context, name, email, password string, isAdmin bool, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uint64) error
}

// EventStore persists and resolves event records.
type EventStore interface {
	Create(ctx context.Context, e model.Event) (model.Event, error)
	GetByID(ctx context.Context, id uint64) (model.Event, error)
	ListAll(ctx context.Context) ([]model.Event, error)
	Like(ctx context.Context, id uint64) (model.Event, error)
	Delete(ctx context.Context, id uint64) error
}

// TicketStore persists and resolves ticket records.
type TicketStore interface {
	Create(ctx context.Context, t model.Ticket) (model.Ticket, error)
	ListAll(ctx context.Context) ([]model.Ticket, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error)
	Delete(ctx context.Context, id uint64) error
}

// StatsStore computes the admin analytics report.
type StatsStore interface {
	Collect(ctx context.Context, now time.Time) (model.AnalyticsReport, error)
}
