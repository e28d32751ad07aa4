package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mehrsa/eventms/internal/model"
)

// AdminHandler serves the admin dashboard API. Every route it handles sits
// behind the RequireAdmin middleware.
type AdminHandler struct {
	Users  UserStore
	Events EventStore
	Stats  StatsStore
}

func NewAdminHandler(users UserStore, events EventStore, stats StatsStore) *AdminHandler {
	return &AdminHandler{Users: users, Events: events, Stats: stats}
}

// ListUsers returns all users with password hashes excluded.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch users"})
	}
	out := make([]userPart, 0, len(users))
	for _, u := range users {
		out = append(out, sanitizeUser(u))
	}
	return c.JSON(http.StatusOK, out)
}

// ListEvents returns all events for the dashboard tables.
func (h *AdminHandler) ListEvents(c echo.Context) error {
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

// DeleteUser removes a user account. Admins cannot delete themselves; the
// gate middleware stores the caller id in context for this check.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if caller, ok := c.Get("user_id").(uint64); ok && caller == id {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cannot delete your own admin account"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}

// DeleteEvent removes an event record.
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete event"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Event deleted successfully"})
}

// analyticsJSON is the dashboard aggregate payload.
type analyticsJSON struct {
	TotalUsers     int64          `json:"totalUsers"`
	TotalEvents    int64          `json:"totalEvents"`
	TotalTickets   int64          `json:"totalTickets"`
	TotalRevenue   float64        `json:"totalRevenue"`
	UpcomingEvents int64          `json:"upcomingEvents"`
	PastEvents     int64          `json:"pastEvents"`
	Events         []revenueJSON  `json:"events"`
}

type revenueJSON struct {
	EventDate   *time.Time `json:"eventDate"`
	TicketPrice float64    `json:"ticketPrice"`
}

// Analytics recomputes the aggregate report on every call; there is no
// caching between requests.
func (h *AdminHandler) Analytics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rep, err := h.Stats.Collect(ctx, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch analytics"})
	}
	return c.JSON(http.StatusOK, toAnalyticsJSON(rep))
}

func toAnalyticsJSON(rep model.AnalyticsReport) analyticsJSON {
	events := make([]revenueJSON, 0, len(rep.Events))
	for _, p := range rep.Events {
		events = append(events, revenueJSON{EventDate: p.EventDate, TicketPrice: p.TicketPrice})
	}
	return analyticsJSON{
		TotalUsers:     rep.TotalUsers,
		TotalEvents:    rep.TotalEvents,
		TotalTickets:   rep.TotalTickets,
		TotalRevenue:   rep.TotalRevenue,
		UpcomingEvents: rep.UpcomingEvents,
		PastEvents:     rep.PastEvents,
		Events:         events,
	}
}
