package model

import "time"

// User represents an application user record as stored in the `users`
// table. PasswordHash is never serialized; handlers build sanitized
// response objects instead. IsAdmin gates the /admin routes.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name supplied at registration.
//  Email        – email address, unique in the table.
//  PasswordHash – bcrypt hashed password.
//  IsAdmin      – whether the user may access admin routes.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	IsAdmin      bool      // users.is_admin
	CreatedAt    time.Time // users.created_at
}
