package repository

import (
	"context"
	"database/sql"

	"github.com/mehrsa/eventms/internal/model"
)

type TicketRepo struct{ DB *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

const ticketColumns = "id,user_id,event_id,holder_name,holder_email,event_name,event_date,event_time,price,qr,created_at"

// Create inserts a ticket exactly as submitted and returns the stored
// record. No validation happens here beyond column types; user and event
// ids are not checked against their tables.
func (r *TicketRepo) Create(ctx context.Context, t model.Ticket) (model.Ticket, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO tickets
		 (user_id,event_id,holder_name,holder_email,event_name,event_date,event_time,price,qr)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		t.UserID, t.EventID, t.HolderName, t.HolderEmail, t.EventName, t.EventDate, t.EventTime, t.Price, t.QR)
	if err != nil {
		return model.Ticket{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Ticket{}, err
	}
	t.ID = uint64(id)
	return r.getByID(ctx, t.ID)
}

// ListAll returns every ticket in natural table order.
func (r *TicketRepo) ListAll(ctx context.Context) ([]model.Ticket, error) {
	return r.list(ctx, "SELECT "+ticketColumns+" FROM tickets")
}

// ListByUser returns the tickets recorded for one user id.
func (r *TicketRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error) {
	return r.list(ctx, "SELECT "+ticketColumns+" FROM tickets WHERE user_id=?", userID)
}

// Delete removes a ticket by id. Deleting an id that is already gone is
// not an error, which makes the HTTP delete route idempotent.
func (r *TicketRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM tickets WHERE id=?", id)
	return err
}

func (r *TicketRepo) getByID(ctx context.Context, id uint64) (model.Ticket, error) {
	var (
		t  model.Ticket
		qr sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+ticketColumns+" FROM tickets WHERE id=? LIMIT 1", id).
		Scan(&t.ID, &t.UserID, &t.EventID, &t.HolderName, &t.HolderEmail,
			&t.EventName, &t.EventDate, &t.EventTime, &t.Price, &qr, &t.CreatedAt)
	t.QR = qr.String
	return t, err
}

func (r *TicketRepo) list(ctx context.Context, query string, args ...any) ([]model.Ticket, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Ticket
	for rows.Next() {
		var (
			t  model.Ticket
			qr sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.EventID, &t.HolderName, &t.HolderEmail,
			&t.EventName, &t.EventDate, &t.EventTime, &t.Price, &qr, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.QR = qr.String
		out = append(out, t)
	}
	return out, rows.Err()
}
