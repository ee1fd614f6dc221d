package models

import (
	"time"
)

type Review struct {
	ID        string `json:"id"`
	UserID    string `json:"userId" validate:"required"`
	EventID   string `json:"eventId" validate:"required"`
	BookingID string `json:"bookingId,omitempty"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	// Older records were written without a timestamp.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
