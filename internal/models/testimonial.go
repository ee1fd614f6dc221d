package models

import "time"

// Testimonial is a platform-wide landing page quote, unrelated to the
// testimonials embedded in offers.
type Testimonial struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	UserName  string    `json:"userName" validate:"required"`
	UserImage string    `json:"userImage"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"required"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}
