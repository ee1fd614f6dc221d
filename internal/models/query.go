package models

import "time"

type QueryStatus string

const (
	QueryOpen     QueryStatus = "open"
	QueryAssigned QueryStatus = "assigned"
	QueryResolved QueryStatus = "resolved"
)

// Query is a support request raised by a user.
type Query struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId" validate:"required"`
	Subject    string      `json:"subject" validate:"required"`
	Message    string      `json:"message" validate:"required"`
	Status     QueryStatus `json:"status" validate:"required,oneof=open assigned resolved"`
	AssignedTo string      `json:"assignedTo,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}
