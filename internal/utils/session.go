package utils // package utils provides helper functions for token creation and hashing

import (
    "errors"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionCookie is the name of the cookie that carries the session token.
const SessionCookie = "token"

// SessionClaims is the identity embedded in a session token. The token is
// carried in the `token` cookie and asserts who the caller is and whether
// they hold the admin flag. No expiry claim is set; a session lasts until
// the cookie is cleared.
type SessionClaims struct {
    UserID  uint64 // subject user id
    Email   string // user email at issue time
    IsAdmin bool   // admin flag at issue time
}

// ErrInvalidSession is returned when a token fails signature verification
// or carries malformed claims. Callers treat it as an authentication
// failure, never as a server fault.
var ErrInvalidSession = errors.New("invalid session token")

// NewSessionToken signs an HS256 JWT embedding the user's email, id and
// admin flag.
func NewSessionToken(secret string, claims SessionClaims) (string, error) {
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "email":   claims.Email,
        "id":      claims.UserID,
        "isAdmin": claims.IsAdmin,
    })
    return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature of a session token and extracts
// its claims. Any verification or shape problem is reported as
// ErrInvalidSession so handlers can map it to a 401 rather than a 500.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidSession
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return SessionClaims{}, ErrInvalidSession
    }
    mc, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return SessionClaims{}, ErrInvalidSession
    }

    var out SessionClaims
    // Numeric JSON claims decode as float64.
    id, ok := mc["id"].(float64)
    if !ok {
        return SessionClaims{}, ErrInvalidSession
    }
    out.UserID = uint64(id)
    out.Email, _ = mc["email"].(string)
    out.IsAdmin, _ = mc["isAdmin"].(bool)
    return out, nil
}
