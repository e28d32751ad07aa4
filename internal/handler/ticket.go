package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mehrsa/eventms/internal/model"
	"github.com/mehrsa/eventms/internal/queue"
)

// PurchasePublisher sends a ticket-purchased message to the broker. The
// publish happens after the record is stored and is fire-and-forget: a
// broker failure never fails the HTTP request.
type PurchasePublisher func(ctx context.Context, ev queue.TicketPurchasedEvent) error

// TicketHandler serves the ticket purchase-record routes.
type TicketHandler struct {
	Tickets TicketStore
	Publish PurchasePublisher // may be nil when messaging is disabled
}

func NewTicketHandler(tickets TicketStore, publish PurchasePublisher) *TicketHandler {
	return &TicketHandler{Tickets: tickets, Publish: publish}
}

// ----- DTOs -----

// ticketDetails mirrors the nested object the purchase form submits.
type ticketDetails struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	EventName   string  `json:"eventname"`
	EventDate   string  `json:"eventdate"`
	EventTime   string  `json:"eventtime"`
	TicketPrice float64 `json:"ticketprice"`
}

type ticketReq struct {
	UserID  uint64        `json:"userid"`
	EventID uint64        `json:"eventid"`
	Details ticketDetails `json:"ticketDetails"`
	QR      string        `json:"qr"`
}

type ticketJSON struct {
	ID      uint64        `json:"_id"`
	UserID  uint64        `json:"userid"`
	EventID uint64        `json:"eventid"`
	Details ticketDetails `json:"ticketDetails"`
	QR      string        `json:"qr,omitempty"`
}

func toTicketJSON(t model.Ticket) ticketJSON {
	return ticketJSON{
		ID:      t.ID,
		UserID:  t.UserID,
		EventID: t.EventID,
		Details: ticketDetails{
			Name:        t.HolderName,
			Email:       t.HolderEmail,
			EventName:   t.EventName,
			EventDate:   t.EventDate,
			EventTime:   t.EventTime,
			TicketPrice: t.Price,
		},
		QR: t.QR,
	}
}

// Create stores a ticket record exactly as submitted and returns it wrapped
// in a "ticket" object. The submitted user and event ids are not validated
// against their tables.
func (h *TicketHandler) Create(c echo.Context) error {
	var req ticketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Tickets.Create(ctx, model.Ticket{
		UserID:      req.UserID,
		EventID:     req.EventID,
		HolderName:  req.Details.Name,
		HolderEmail: req.Details.Email,
		EventName:   req.Details.EventName,
		EventDate:   req.Details.EventDate,
		EventTime:   req.Details.EventTime,
		Price:       req.Details.TicketPrice,
		QR:          req.QR,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create ticket"})
	}

	if h.Publish != nil {
		ev := queue.TicketPurchasedEvent{
			TicketID:    t.ID,
			UserID:      t.UserID,
			EventID:     t.EventID,
			EventName:   t.EventName,
			HolderName:  t.HolderName,
			HolderEmail: t.HolderEmail,
			Price:       t.Price,
			PurchasedAt: time.Now().UTC().Format(time.RFC3339),
		}
		// Detached from the request lifetime on purpose.
		go func() { _ = h.Publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, echo.Map{"ticket": toTicketJSON(t)})
}

// ListAll returns every ticket. The :id path segment is accepted but
// unused, matching the route shape the client already calls.
func (h *TicketHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tickets, err := h.Tickets.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch tickets"})
	}
	return c.JSON(http.StatusOK, ticketsJSON(tickets))
}

// ListByUser returns the tickets recorded for one user id.
func (h *TicketHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tickets, err := h.Tickets.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user tickets"})
	}
	return c.JSON(http.StatusOK, ticketsJSON(tickets))
}

// Delete removes a ticket and responds 204 whether or not the id existed.
func (h *TicketHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Tickets.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete ticket"})
	}
	return c.NoContent(http.StatusNoContent)
}

func ticketsJSON(tickets []model.Ticket) []ticketJSON {
	out := make([]ticketJSON, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketJSON(t))
	}
	return out
}
