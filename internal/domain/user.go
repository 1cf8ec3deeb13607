package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered traveller. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserWithTrips is a user together with the trips they belong to.
type UserWithTrips struct {
	User
	TripIDs []uuid.UUID
}
