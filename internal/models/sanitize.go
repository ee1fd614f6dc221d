package models

import (
	"strings"
)

func (r *Review) Sanitize() {
	r.Comment = strings.TrimSpace(r.Comment)
}

func (t *Testimonial) Sanitize() {
	t.UserName = strings.TrimSpace(t.UserName)
	t.Comment = strings.TrimSpace(t.Comment)
}

func (e *Event) Sanitize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	e.Location = strings.TrimSpace(e.Location)
}

func (c *Company) Sanitize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
}

func (o *EventCompanyOffer) Sanitize() {
	o.GalleryImages = removeDuplicates(o.GalleryImages)
	o.Policies = removeDuplicates(o.Policies)
}

func (q *Query) Sanitize() {
	q.Subject = strings.TrimSpace(q.Subject)
	q.Message = strings.TrimSpace(q.Message)
}

// removeDuplicates drops blank and repeated entries, keeping first-seen order.
func removeDuplicates(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
