package models

import "time"

// Company is a vendor that sells offers for events. Companies without an
// owner were created by an admin.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	OwnerID     string    `json:"ownerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c Company) OwnedBy(userID string) bool {
	return c.OwnerID != "" && c.OwnerID == userID
}
