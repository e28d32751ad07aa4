package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mehrsa/eventms/internal/model"
)

// MockUserStore mocks the UserStore interface.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, name, email, password string, isAdmin bool, cost int) (model.User, error) {
	args := m.Called(ctx, name, email, password, isAdmin, cost)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventStore mocks the EventStore interface.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Create(ctx context.Context, e model.Event) (model.Event, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(model.Event), args.Error(1)
}

func (m *MockEventStore) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Event), args.Error(1)
}

func (m *MockEventStore) ListAll(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventStore) Like(ctx context.Context, id uint64) (model.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Event), args.Error(1)
}

func (m *MockEventStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTicketStore mocks the TicketStore interface.
type MockTicketStore struct {
	mock.Mock
}

func (m *MockTicketStore) Create(ctx context.Context, t model.Ticket) (model.Ticket, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Ticket), args.Error(1)
}

func (m *MockTicketStore) ListAll(ctx context.Context) ([]model.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func (m *MockTicketStore) ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func (m *MockTicketStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStatsStore mocks the StatsStore interface.
type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) Collect(ctx context.Context, now time.Time) (model.AnalyticsReport, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(model.AnalyticsReport), args.Error(1)
}
