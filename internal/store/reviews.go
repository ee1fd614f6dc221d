package store

import (
	"context"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// AddReview appends the review and refreshes the reviewed event's rating
// and review count. Reviews are written before events.
func (s *DataStore) AddReview(ctx context.Context, r models.Review) (models.Review, error) {
	r, _, err := s.addReview(ctx, r, false)
	return r, err
}

// AddReviewOnce is AddReview that refuses a second review by the same user
// for the same event. ok is false when one already exists.
func (s *DataStore) AddReviewOnce(ctx context.Context, r models.Review) (models.Review, bool, error) {
	return s.addReview(ctx, r, true)
}

func (s *DataStore) addReview(ctx context.Context, r models.Review, once bool) (models.Review, bool, error) {
	r.ID = s.newID("review")
	r.CreatedAt = s.now()
	r.Sanitize()
	if err := validate("review", r); err != nil {
		return models.Review{}, false, err
	}

	ok := true
	err := s.mutate(func() ([]Change, error) {
		if once {
			if _, found := s.reviewByUserForEventLocked(r.UserID, r.EventID); found {
				ok = false
				return nil, nil
			}
		}
		s.reviews.add(r)
		changes := created(CollectionReviews, r.ID)
		if s.applyAggregateLocked(r.EventID) {
			changes = append(changes, updated(CollectionEvents, r.EventID)...)
		}
		return s.stamp(changes...), s.persist(ctx, s.reviews, s.events)
	})
	if !ok {
		return models.Review{}, false, err
	}
	return r, true, err
}

// DeleteReview removes the review and refreshes its event. With no reviews
// left the event falls back to DefaultEventRating.
func (s *DataStore) DeleteReview(ctx context.Context, id string) (bool, error) {
	found := false
	err := s.mutate(func() ([]Change, error) {
		r, ok := s.reviews.get(id)
		if !ok {
			return nil, nil
		}
		found = true
		s.reviews.removeWhere(func(v models.Review) bool { return v.ID == id })
		changes := deleted(CollectionReviews, id)
		if s.applyAggregateLocked(r.EventID) {
			changes = append(changes, updated(CollectionEvents, r.EventID)...)
		}
		return s.stamp(changes...), s.persist(ctx, s.reviews, s.events)
	})
	return found, err
}

func (s *DataStore) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviews.all()
}

func (s *DataStore) ReviewsForEvent(eventID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviews.filter(func(r models.Review) bool { return r.EventID == eventID })
}

func (s *DataStore) ReviewByUserForEvent(userID, eventID string) (models.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewByUserForEventLocked(userID, eventID)
}

func (s *DataStore) reviewByUserForEventLocked(userID, eventID string) (models.Review, bool) {
	return s.reviews.find(func(r models.Review) bool {
		return r.UserID == userID && r.EventID == eventID
	})
}
