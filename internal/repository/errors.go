// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios without inspecting
// driver-specific errors.
package repository

import "errors"

// ErrEmailExists is returned when a user insert collides with the unique
// email index. Handlers translate this into an HTTP 422 response.
var ErrEmailExists = errors.New("email already exists")

// ErrEventNotFound is returned when an event id does not resolve to a row.
// Handlers translate this into an HTTP 404 response, or a null body on the
// public fetch route.
var ErrEventNotFound = errors.New("event not found")

// ErrUserNotFound is returned when a user id or email does not resolve to
// a row.
var ErrUserNotFound = errors.New("user not found")
