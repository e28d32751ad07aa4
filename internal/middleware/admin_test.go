package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mehrsa/eventms/internal/model"
	"github.com/mehrsa/eventms/internal/utils"
)

const gateSecret = "gate-secret"

type fakeUserLoader struct {
	users map[uint64]model.User
}

func (f *fakeUserLoader) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, errors.New("user not found")
	}
	return u, nil
}

func runGate(t *testing.T, loader UserLoader, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	assert.NoError(t, RequireAdmin(gateSecret, loader)(next)(c))
	return rec, reached
}

func TestGateMissingCookieIs401(t *testing.T) {
	rec, reached := runGate(t, &fakeUserLoader{}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestGateInvalidTokenIs401(t *testing.T) {
	rec, reached := runGate(t, &fakeUserLoader{},
		&http.Cookie{Name: utils.SessionCookie, Value: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestGateNonAdminIs403(t *testing.T) {
	token, err := utils.NewSessionToken(gateSecret, utils.SessionClaims{UserID: 2, Email: "user@example.com"})
	assert.NoError(t, err)

	loader := &fakeUserLoader{users: map[uint64]model.User{2: {ID: 2, IsAdmin: false}}}
	rec, reached := runGate(t, loader, &http.Cookie{Name: utils.SessionCookie, Value: token})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestGateUnknownUserIs403(t *testing.T) {
	token, err := utils.NewSessionToken(gateSecret, utils.SessionClaims{UserID: 404})
	assert.NoError(t, err)

	rec, reached := runGate(t, &fakeUserLoader{}, &http.Cookie{Name: utils.SessionCookie, Value: token})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestGateAdminPasses(t *testing.T) {
	token, err := utils.NewSessionToken(gateSecret, utils.SessionClaims{UserID: 1, IsAdmin: true})
	assert.NoError(t, err)

	loader := &fakeUserLoader{users: map[uint64]model.User{1: {ID: 1, IsAdmin: true}}}
	rec, reached := runGate(t, loader, &http.Cookie{Name: utils.SessionCookie, Value: token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

// The gate checks the database row, not the token claim: a token still
// claiming admin must be rejected once the row lost the flag.
func TestGateTrustsRowOverClaim(t *testing.T) {
	token, err := utils.NewSessionToken(gateSecret, utils.SessionClaims{UserID: 3, IsAdmin: true})
	assert.NoError(t, err)

	loader := &fakeUserLoader{users: map[uint64]model.User{3: {ID: 3, IsAdmin: false}}}
	rec, _ := runGate(t, loader, &http.Cookie{Name: utils.SessionCookie, Value: token})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
