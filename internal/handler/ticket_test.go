package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehrsa/eventms/internal/model"
	"github.com/mehrsa/eventms/internal/queue"
)

func ticketContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestCreateTicketReturns201AndPublishes(t *testing.T) {
	tickets := new(MockTicketStore)
	tickets.On("Create", mock.Anything, mock.MatchedBy(func(tk model.Ticket) bool {
		return tk.UserID == 3 && tk.Price == 42.0
	})).Return(model.Ticket{ID: 10, UserID: 3, EventID: 8, Price: 42.0, EventName: "GopherCon"}, nil)

	published := make(chan queue.TicketPurchasedEvent, 1)
	h := NewTicketHandler(tickets, func(ctx context.Context, ev queue.TicketPurchasedEvent) error {
		published <- ev
		return nil
	})

	c, rec := ticketContext(http.MethodPost, "/tickets",
		`{"userid":3,"eventid":8,"ticketDetails":{"name":"Sara","eventname":"GopherCon","ticketprice":42}}`)
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ticket"`)
	assert.Contains(t, rec.Body.String(), `"_id":10`)

	select {
	case ev := <-published:
		assert.Equal(t, uint64(10), ev.TicketID)
		assert.Equal(t, 42.0, ev.Price)
	case <-time.After(time.Second):
		t.Fatal("expected a ticket.purchased publish")
	}
}

func TestCreateTicketWorksWithoutPublisher(t *testing.T) {
	tickets := new(MockTicketStore)
	tickets.On("Create", mock.Anything, mock.Anything).Return(model.Ticket{ID: 11}, nil)

	h := NewTicketHandler(tickets, nil)
	c, rec := ticketContext(http.MethodPost, "/tickets", `{"userid":1,"eventid":2,"ticketDetails":{}}`)
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteTicketIsIdempotent204(t *testing.T) {
	tickets := new(MockTicketStore)
	// The store reports success even when the row was already gone.
	tickets.On("Delete", mock.Anything, uint64(999)).Return(nil)

	h := NewTicketHandler(tickets, nil)
	c, rec := ticketContext(http.MethodDelete, "/tickets/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")
	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestListByUserFiltersOnUserID(t *testing.T) {
	tickets := new(MockTicketStore)
	tickets.On("ListByUser", mock.Anything, uint64(3)).
		Return([]model.Ticket{{ID: 1, UserID: 3}, {ID: 2, UserID: 3}}, nil)

	h := NewTicketHandler(tickets, nil)
	c, rec := ticketContext(http.MethodGet, "/tickets/user/3", "")
	c.SetParamNames("userId")
	c.SetParamValues("3")
	assert.NoError(t, h.ListByUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userid":3`)
}

func TestListByUserInvalidIDIs400(t *testing.T) {
	h := NewTicketHandler(new(MockTicketStore), nil)
	c, rec := ticketContext(http.MethodGet, "/tickets/user/abc", "")
	c.SetParamNames("userId")
	c.SetParamValues("abc")
	assert.NoError(t, h.ListByUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAllIgnoresPathID(t *testing.T) {
	tickets := new(MockTicketStore)
	tickets.On("ListAll", mock.Anything).Return([]model.Ticket{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	h := NewTicketHandler(tickets, nil)
	c, rec := ticketContext(http.MethodGet, "/tickets/12345", "")
	c.SetParamNames("id")
	c.SetParamValues("12345")
	assert.NoError(t, h.ListAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":3`)
}
