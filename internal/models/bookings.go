package models

import (
	"time"
)

type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyPriority Urgency = "priority"
	UrgencyUrgent   Urgency = "urgent"
)

// Multiplier is the price factor applied to the base price. Unknown values
// price like standard.
func (u Urgency) Multiplier() float64 {
	switch u {
	case UrgencyPriority:
		return 1.5
	case UrgencyUrgent:
		return 2.0
	default:
		return 1.0
	}
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId" validate:"required"`
	EventID   string    `json:"eventId" validate:"required"`
	CompanyID string    `json:"companyId"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"` // slot label, e.g. "10:00 AM"
	Urgency   Urgency   `json:"urgency" validate:"required,oneof=standard priority urgent"`
	// status to track booking state ("pending", "confirmed", "cancelled")
	Status     BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled"`
	TotalPrice int           `json:"totalPrice" validate:"gte=0"`
	CreatedAt  time.Time     `json:"createdAt"`
}
