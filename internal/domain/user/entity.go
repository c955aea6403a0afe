package user

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUniversity is applied when registration omits the university.
const DefaultUniversity = "Global Horizon University"

// Passout-year bounds accepted at registration.
const (
	MinPassoutYear = 1990
	MaxPassoutYear = 2025
)

type User struct {
	ID             uuid.UUID
	FullName       string
	Email          string
	PasswordHash   string
	University     string
	PassoutYear    int
	Location       string
	Company        string
	Domain         string
	Phone          string
	ProfilePicture *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DonationRecord is the per-user view of a donation, ordered oldest first.
type DonationRecord struct {
	Purpose   string
	Amount    float64
	Timestamp time.Time
}

// Snapshot is the password-free user view handed across the API boundary,
// with the owned collections joined in at read time.
type Snapshot struct {
	User
	RegisteredEvents []uuid.UUID
	Donations        []DonationRecord
}

// Patch carries the mutable profile fields; nil means leave unchanged.
// Email, university, and passout year are immutable after registration.
type Patch struct {
	FullName       *string
	Location       *string
	Company        *string
	Domain         *string
	Phone          *string
	ProfilePicture *string
}

func (p Patch) Empty() bool {
	return p.FullName == nil &&
		p.Location == nil &&
		p.Company == nil &&
		p.Domain == nil &&
		p.Phone == nil &&
		p.ProfilePicture == nil
}
