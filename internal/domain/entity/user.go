// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to authenticate and own transactions.
type User struct {
	ID           uuid.UUID // System-assigned identifier.
	Username     string    // Unique login name.
	Email        string    // Unique contact email, also accepted as a login identifier.
	PasswordHash string    // bcrypt hash; never leaves the service.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the outward view of a User, embedded in access tokens.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public strips the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
