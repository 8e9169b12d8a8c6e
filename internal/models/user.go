// Package models contains the domain structures shared between the business
// logic and the storage layer: registered users, onboarding answers and the
// debt plan / daily report value types.
package models

import "time"

// User represents a registered account. Email is stored normalized
// (trimmed, lowercased) and is unique. PasswordHash is the bcrypt credential
// and must never leave the service layer.
type User struct {
	UID          string    // Unique user identifier (uuid)
	Name         string    // Display name
	Email        string    // Normalized email, uniqueness key
	PasswordHash string    // bcrypt hash of the password
	CreatedAt    time.Time // Set once at registration
}

// PublicUser is the view of a user returned to clients. The credential is
// deliberately absent.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the credential and internal fields from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.UID,
		Name:  u.Name,
		Email: u.Email,
	}
}
