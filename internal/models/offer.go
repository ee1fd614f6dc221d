package models

import (
	"slices"
	"time"
)

type OfferTestimonial struct {
	ID       string `json:"id"`
	UserName string `json:"userName" validate:"required"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
}

// EventCompanyOffer is one company's price and terms for one event. Price
// replaces the event's base price when booking through that company.
type EventCompanyOffer struct {
	ID            string             `json:"id"`
	EventID       string             `json:"eventId" validate:"required"`
	CompanyID     string             `json:"companyId" validate:"required"`
	Price         int                `json:"price" validate:"gte=0"`
	GalleryImages []string           `json:"galleryImages,omitempty"`
	Policies      []string           `json:"policies,omitempty"`
	Testimonials  []OfferTestimonial `json:"testimonials,omitempty" validate:"dive"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// Clone copies the slices so callers cannot alias stored state.
func (o EventCompanyOffer) Clone() EventCompanyOffer {
	o.GalleryImages = slices.Clone(o.GalleryImages)
	o.Policies = slices.Clone(o.Policies)
	o.Testimonials = slices.Clone(o.Testimonials)
	return o
}
