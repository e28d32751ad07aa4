package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/mehrsa/eventms/internal/model"
)

var ticketCols = []string{"id", "user_id", "event_id", "holder_name", "holder_email",
	"event_name", "event_date", "event_time", "price", "qr", "created_at"}

func TestTicketCreateReturnsStoredRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tickets")).
		WithArgs(uint64(3), uint64(8), "Sara", "sara@example.com", "GopherCon", "2026-09-10", "18:00", 42.0, "qr-data").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM tickets WHERE id=?")).
		WithArgs(uint64(10)).
		WillReturnRows(sqlmock.NewRows(ticketCols).
			AddRow(10, 3, 8, "Sara", "sara@example.com", "GopherCon", "2026-09-10", "18:00", 42.0, "qr-data", time.Now()))

	got, err := NewTicketRepo(db).Create(context.Background(), model.Ticket{
		UserID: 3, EventID: 8, HolderName: "Sara", HolderEmail: "sara@example.com",
		EventName: "GopherCon", EventDate: "2026-09-10", EventTime: "18:00", Price: 42.0, QR: "qr-data",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), got.ID)
	assert.Equal(t, 42.0, got.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketDeleteAbsentRowIsNoError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tickets WHERE id=?")).
		WithArgs(uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewTicketRepo(db).Delete(context.Background(), 404))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM tickets WHERE user_id=?")).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(ticketCols).
			AddRow(1, 3, 8, "Sara", "s@e.com", "GopherCon", "2026-09-10", "18:00", 42.0, nil, time.Now()).
			AddRow(2, 3, 9, "Sara", "s@e.com", "FOSDEM", "2027-02-01", "09:00", 0.0, nil, time.Now()))

	tickets, err := NewTicketRepo(db).ListByUser(context.Background(), 3)
	assert.NoError(t, err)
	if assert.Len(t, tickets, 2) {
		assert.Equal(t, "GopherCon", tickets[0].EventName)
		assert.Empty(t, tickets[1].QR) // NULL qr scans to empty string
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
