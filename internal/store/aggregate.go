package store

import (
	"math"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// DefaultEventRating is shown for an event once its last review is removed.
const DefaultEventRating = 4.5

type EventAggregate struct {
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// RecomputeEventAggregate derives an event's rating and review count from
// reviews: the mean rating rounded to one decimal, or DefaultEventRating
// when the event has no reviews.
func RecomputeEventAggregate(reviews []models.Review, eventID string) EventAggregate {
	sum, count := 0, 0
	for _, r := range reviews {
		if r.EventID != eventID {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return EventAggregate{Rating: DefaultEventRating, ReviewCount: 0}
	}
	mean := float64(sum) / float64(count)
	return EventAggregate{
		Rating:      math.Round(mean*10) / 10,
		ReviewCount: count,
	}
}

// applyAggregateLocked writes the recomputed aggregate onto the event and
// reports whether the event exists.
func (s *DataStore) applyAggregateLocked(eventID string) bool {
	i := s.events.index(eventID)
	if i < 0 {
		return false
	}
	agg := RecomputeEventAggregate(s.reviews.items, eventID)
	ev := s.events.items[i]
	ev.Rating = agg.Rating
	ev.ReviewCount = agg.ReviewCount
	s.events.set(i, ev)
	return true
}
