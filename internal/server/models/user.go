// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an identity. Anonymous guests have no email or password hash.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	IsAnonymous  bool
	CreatedAt    time.Time
}
