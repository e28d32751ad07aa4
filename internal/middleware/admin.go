package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/mehrsa/eventms/internal/model"
    "github.com/mehrsa/eventms/internal/utils"
)

// UserLoader resolves a user record by id. The admin gate performs a fresh
// lookup on every request; the admin flag in the token alone is not
// trusted, so a demoted account loses access as soon as the row changes.
type UserLoader interface {
    GetByID(ctx context.Context, id uint64) (model.User, error)
}

// RequireAdmin returns an Echo middleware that gates admin-only routes.
// The chain is: extract the session cookie (401 when absent), verify the
// token (401 when invalid), load the user by the embedded id (403 when
// missing or not flagged admin). On success the caller's user id is stored
// in the context under "user_id" for handlers such as the self-delete guard.
func RequireAdmin(secret string, users UserLoader) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cookie, err := c.Cookie(utils.SessionCookie)
            if err != nil || cookie.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authenticated"})
            }
            claims, err := utils.ParseSessionToken(secret, cookie.Value)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authenticated"})
            }

            ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
            defer cancel()

            u, err := users.GetByID(ctx, claims.UserID)
            if err != nil || !u.IsAdmin {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "Not authorized"})
            }

            c.Set("user_id", u.ID)
            return next(c)
        }
    }
}
