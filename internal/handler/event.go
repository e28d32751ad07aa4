package handler

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mehrsa/eventms/internal/model"
	"github.com/mehrsa/eventms/internal/repository"
)

// EventHandler serves the public event routes: create with optional image
// upload, list, fetch and like.
type EventHandler struct {
	Events    EventStore
	UploadDir string // filesystem directory backing the /uploads static route
}

func NewEventHandler(events EventStore, uploadDir string) *EventHandler {
	return &EventHandler{Events: events, UploadDir: uploadDir}
}

// eventJSON is the wire representation of an event record.
type eventJSON struct {
	ID           uint64     `json:"_id"`
	Owner        string     `json:"owner"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	OrganizedBy  string     `json:"organizedBy"`
	EventDate    *time.Time `json:"eventDate"`
	EventTime    string     `json:"eventTime"`
	Location     string     `json:"location"`
	Participants int        `json:"participants"`
	Count        int        `json:"count"`
	Income       float64    `json:"income"`
	TicketPrice  float64    `json:"ticketPrice"`
	Quantity     int        `json:"quantity"`
	Image        string     `json:"image"`
	Likes        int        `json:"likes"`
	Comments     []string   `json:"comments"`
}

func toEventJSON(e model.Event) eventJSON {
	comments := e.Comments
	if comments == nil {
		comments = []string{}
	}
	return eventJSON{
		ID:           e.ID,
		Owner:        e.Owner,
		Title:        e.Title,
		Description:  e.Description,
		OrganizedBy:  e.OrganizedBy,
		EventDate:    e.EventDate,
		EventTime:    e.EventTime,
		Location:     e.Location,
		Participants: e.Participants,
		Count:        e.BookedCount,
		Income:       e.Income,
		TicketPrice:  e.TicketPrice,
		Quantity:     e.Quantity,
		Image:        e.Image,
		Likes:        e.Likes,
		Comments:     comments,
	}
}

// Create handles the multipart event submission form. An attached image is
// written to the upload directory under a generated unique filename before
// the record is inserted; a record that fails to insert does not remove
// the already-written file.
func (h *EventHandler) Create(c echo.Context) error {
	e := model.Event{
		Owner:       c.FormValue("owner"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		OrganizedBy: c.FormValue("organizedBy"),
		EventTime:   c.FormValue("eventTime"),
		Location:    c.FormValue("location"),
	}
	if d := parseEventDate(c.FormValue("eventDate")); d != nil {
		e.EventDate = d
	}
	e.TicketPrice = parseFloat(c.FormValue("ticketPrice"))
	e.Income = parseFloat(c.FormValue("income"))
	e.Quantity = parseInt(c.FormValue("quantity"))
	e.Participants = parseInt(c.FormValue("participants"))

	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, err := h.saveImage(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store image"})
		}
		e.Image = path
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.Events.Create(ctx, e)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save the event"})
	}
	return c.JSON(http.StatusCreated, toEventJSON(created))
}

// List returns all events in store order.
func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch events"})
	}
	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, toEventJSON(e))
	}
	return c.JSON(http.StatusOK, out)
}

// Get fetches one event. A missing id responds 200 with a null body; the
// client treats null as not-found.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch event"})
	}
	return c.JSON(http.StatusOK, toEventJSON(e))
}

// Like increments the like counter by exactly one and returns the updated
// record. Missing events are a 404.
func (h *EventHandler) Like(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Events.Like(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, toEventJSON(e))
}

// saveImage writes the uploaded file into the upload directory under a
// uuid-based filename that keeps the original extension, and returns the
// public /uploads path stored on the record.
func (h *EventHandler) saveImage(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// parseEventDate accepts the date formats the browser form submits.
func parseEventDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
