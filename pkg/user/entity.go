package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a user account.
// PasswordHash must never leave the service; transport-level
// projections carry only ID, Name and Email.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
