package dto

import (
	"time"

	"alumni-connect/internal/domain/user"

	"github.com/google/uuid"
)

// UserResponse is the client-held session snapshot. The password hash is
// stripped before this is ever built.
type UserResponse struct {
	ID               uuid.UUID        `json:"id"`
	FullName         string           `json:"full_name"`
	Email            string           `json:"email"`
	University       string           `json:"university"`
	PassoutYear      int              `json:"passout_year"`
	Location         string           `json:"location"`
	Company          string           `json:"company"`
	Domain           string           `json:"domain"`
	Phone            string           `json:"phone"`
	ProfilePicture   *string          `json:"profile_picture,omitempty"`
	RegisteredEvents []uuid.UUID      `json:"registered_events"`
	Donations        []DonationRecord `json:"donations"`
	CreatedAt        time.Time        `json:"created_at"`
}

type DonationRecord struct {
	Purpose   string    `json:"purpose"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func NewUserResponse(s user.Snapshot) UserResponse {
	events := s.RegisteredEvents
	if events == nil {
		events = []uuid.UUID{}
	}
	donations := make([]DonationRecord, 0, len(s.Donations))
	for _, d := range s.Donations {
		donations = append(donations, DonationRecord{
			Purpose:   d.Purpose,
			Amount:    d.Amount,
			Timestamp: d.Timestamp,
		})
	}

	return UserResponse{
		ID:               s.ID,
		FullName:         s.FullName,
		Email:            s.Email,
		University:       s.University,
		PassoutYear:      s.PassoutYear,
		Location:         s.Location,
		Company:          s.Company,
		Domain:           s.Domain,
		Phone:            s.Phone,
		ProfilePicture:   s.ProfilePicture,
		RegisteredEvents: events,
		Donations:        donations,
		CreatedAt:        s.CreatedAt,
	}
}

// AlumniResponse is the directory listing entry.
type AlumniResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	University     string    `json:"university"`
	PassoutYear    int       `json:"passout_year"`
	Location       string    `json:"location"`
	Company        string    `json:"company"`
	Domain         string    `json:"domain"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
}

func NewAlumniResponse(u user.User) AlumniResponse {
	return AlumniResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		University:     u.University,
		PassoutYear:    u.PassoutYear,
		Location:       u.Location,
		Company:        u.Company,
		Domain:         u.Domain,
		ProfilePicture: u.ProfilePicture,
	}
}
