package models

import (
	"time"
)

// EventCategories is the suggestion set offered to admins; category itself is free text.
var EventCategories = []string{
	"Wedding",
	"Birthday",
	"Ceremony",
	"Photography",
	"Conference",
	"Corporate",
	"Party",
	"Other",
}

type Event struct {
	ID          string    `json:"id"`
	PlannerID   string    `json:"plannerId,omitempty"`
	CompanyID   string    `json:"companyId,omitempty"`
	Title       string    `json:"title" validate:"required"`    // e.g., "Sangeet Night"
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"` // e.g., "Wedding"
	Price       int       `json:"price" validate:"gte=0"`       // whole currency units
	Image       string    `json:"image"`                        // URL or data URI
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity" validate:"gte=0"`
	Featured    bool      `json:"featured"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"` // derived from reviews
	ReviewCount int       `json:"reviewCount" validate:"gte=0"`  // derived from reviews
	CreatedAt   time.Time `json:"createdAt"`
}
