package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mehrsa/eventms/internal/model"
)

type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

const eventColumns = "id,owner,title,description,organized_by,event_date,event_time,location,participants,booked_count,income,ticket_price,quantity,image,likes,comments,created_at"

// Create inserts an event and returns the stored record.
func (r *EventRepo) Create(ctx context.Context, e model.Event) (model.Event, error) {
	comments, err := marshalComments(e.Comments)
	if err != nil {
		return model.Event{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO events
		 (owner,title,description,organized_by,event_date,event_time,location,
		  participants,booked_count,income,ticket_price,quantity,image,likes,comments)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		e.Owner, e.Title, e.Description, e.OrganizedBy, e.EventDate, e.EventTime, e.Location,
		e.Participants, e.BookedCount, e.Income, e.TicketPrice, e.Quantity, e.Image, e.Likes, comments)
	if err != nil {
		return model.Event{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Event{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a single event. Absent ids yield ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1", id)
	e, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// ListAll returns every event in natural table order.
func (r *EventRepo) ListAll(ctx context.Context) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+eventColumns+" FROM events")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Like increments the like counter of an event by one and returns the
// updated record. The increment itself is a single UPDATE, but the
// preceding existence check makes the whole operation a read-modify-write;
// concurrent likes may interleave with deletes, which is tolerated.
func (r *EventRepo) Like(ctx context.Context, id uint64) (model.Event, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Event{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE events SET likes = likes + 1 WHERE id=?", id); err != nil {
		return model.Event{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes an event by id. Deleting an absent id is not an error.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	return err
}

// scanEvent reads one event row through the provided scan function so the
// same column handling serves both sql.Row and sql.Rows.
func scanEvent(scan func(dest ...any) error) (model.Event, error) {
	var (
		e        model.Event
		date     sql.NullTime
		desc     sql.NullString
		comments []byte
	)
	err := scan(&e.ID, &e.Owner, &e.Title, &desc, &e.OrganizedBy, &date, &e.EventTime,
		&e.Location, &e.Participants, &e.BookedCount, &e.Income, &e.TicketPrice,
		&e.Quantity, &e.Image, &e.Likes, &comments, &e.CreatedAt)
	if err != nil {
		return model.Event{}, err
	}
	e.Description = desc.String
	if date.Valid {
		t := date.Time
		e.EventDate = &t
	}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &e.Comments); err != nil {
			return model.Event{}, err
		}
	}
	return e, nil
}

func marshalComments(comments []string) ([]byte, error) {
	if comments == nil {
		comments = []string{}
	}
	return json.Marshal(comments)
}
