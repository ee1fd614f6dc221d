package store

import (
	"cmp"
	"slices"
	"strings"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// Event orderings accepted by SearchEvents.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// EventFilter narrows SearchEvents. Zero values match everything; Category
// "all" is treated as no category.
type EventFilter struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

// SearchEvents matches Query case-insensitively against title, description
// and location, filters on exact category, then orders the result. Ties keep
// collection order.
func (s *DataStore) SearchEvents(filter EventFilter) []models.Event {
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	category := filter.Category
	if category == "all" {
		category = ""
	}

	s.mu.Lock()
	events := s.events.filter(func(e models.Event) bool {
		if category != "" && e.Category != category {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Location), q)
	})
	s.mu.Unlock()

	switch filter.Sort {
	case SortFeatured:
		slices.SortStableFunc(events, func(a, b models.Event) int {
			return boolRank(b.Featured) - boolRank(a.Featured)
		})
	case SortPriceLow:
		slices.SortStableFunc(events, func(a, b models.Event) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(events, func(a, b models.Event) int { return cmp.Compare(b.Price, a.Price) })
	case SortRating:
		slices.SortStableFunc(events, func(a, b models.Event) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return events
}

// Categories lists the distinct categories in use, in first-seen order.
func (s *DataStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range s.events.items {
		if e.Category == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
