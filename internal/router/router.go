package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mehrsa/eventms/internal/handler"
)

// Register wires every route of the service onto the provided Echo
// instance. The route shapes deliberately match what the browser client
// already calls: POST and GET share /createEvent, /tickets/:id lists all
// tickets, and the admin API lives under /admin behind the admin gate.
func Register(e *echo.Echo, auth *handler.AuthHandler, events *handler.EventHandler,
	tickets *handler.TicketHandler, admin *handler.AdminHandler, gate echo.MiddlewareFunc,
	frontendURL, uploadDir string) {

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{frontendURL},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Uploaded event images are served directly from the upload directory.
	e.Static("/uploads", uploadDir)

	// Auth.
	e.POST("/register", auth.Register)
	e.POST("/login", auth.Login)
	e.GET("/profile", auth.Profile)
	e.POST("/logout", auth.Logout)

	// Events. The form both submits to and lists from /createEvent.
	e.POST("/createEvent", events.Create)
	e.GET("/createEvent", events.List)
	e.GET("/events", events.List)
	e.GET("/event/:id", events.Get)
	e.POST("/event/:id", events.Like)
	e.GET("/event/:id/ordersummary", events.Get)
	e.GET("/event/:id/ordersummary/paymentsummary", events.Get)

	// Tickets.
	e.POST("/tickets", tickets.Create)
	e.GET("/tickets/:id", tickets.ListAll) // id unused, kept for client compatibility
	e.GET("/tickets/user/:userId", tickets.ListByUser)
	e.DELETE("/tickets/:id", tickets.Delete)

	// Admin dashboard API, gated per request.
	g := e.Group("/admin", gate)
	g.GET("/users", admin.ListUsers)
	g.GET("/events", admin.ListEvents)
	g.GET("/analytics", admin.Analytics)
	g.DELETE("/users/:id", admin.DeleteUser)
	g.DELETE("/events/:id", admin.DeleteEvent)
}
