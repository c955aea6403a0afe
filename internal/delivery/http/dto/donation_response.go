package dto

import (
	"time"

	"alumni-connect/internal/domain/donation"

	"github.com/google/uuid"
)

type DonationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Amount    float64   `json:"amount"`
	Purpose   string    `json:"purpose"`
	Message   *string   `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewDonationResponse(d donation.Donation) DonationResponse {
	return DonationResponse{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Amount:    d.Amount,
		Purpose:   d.Purpose,
		Message:   d.Message,
		Timestamp: d.CreatedAt,
	}
}
