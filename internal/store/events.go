package store

import (
	"context"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// AddEvent stores a new event. A fresh event has no reviews, so its rating
// starts at DefaultEventRating.
func (s *DataStore) AddEvent(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = s.newID("event")
	e.CreatedAt = s.now()
	e.Sanitize()
	if e.Rating == 0 && e.ReviewCount == 0 {
		e.Rating = DefaultEventRating
	}
	if err := validate("event", e); err != nil {
		return models.Event{}, err
	}

	err := s.mutate(func() ([]Change, error) {
		s.events.add(e)
		return s.stamp(created(CollectionEvents, e.ID)...), s.persist(ctx, s.events)
	})
	return e, err
}

// UpdateEvent merges patch into the event. Rating and review count are
// derived from reviews and cannot be patched, not even by an admin; they may
// only be set when the event is created with AddEvent.
func (s *DataStore) UpdateEvent(ctx context.Context, id string, patch models.Patch) (bool, error) {
	return updateRecord(ctx, s, s.events, CollectionEvents, id, patch, "rating", "reviewCount")
}

// DeleteEvent removes only the event; its bookings, reviews and offers stay.
func (s *DataStore) DeleteEvent(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, s.events, CollectionEvents, id)
}

func (s *DataStore) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.all()
}

func (s *DataStore) Event(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.get(id)
}

func (s *DataStore) FeaturedEvents() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.filter(func(e models.Event) bool { return e.Featured })
}
