package store

import (
	"context"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

func (s *DataStore) AddTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	t.ID = s.newID("testimonial")
	t.CreatedAt = s.now()
	t.Sanitize()
	if err := validate("testimonial", t); err != nil {
		return models.Testimonial{}, err
	}

	err := s.mutate(func() ([]Change, error) {
		s.testimonials.add(t)
		return s.stamp(created(CollectionTestimonials, t.ID)...), s.persist(ctx, s.testimonials)
	})
	return t, err
}

func (s *DataStore) UpdateTestimonial(ctx context.Context, id string, patch models.Patch) (bool, error) {
	return updateRecord(ctx, s, s.testimonials, CollectionTestimonials, id, patch)
}

func (s *DataStore) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, s.testimonials, CollectionTestimonials, id)
}

func (s *DataStore) Testimonials() []models.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.testimonials.all()
}

func (s *DataStore) FeaturedTestimonials() []models.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.testimonials.filter(func(t models.Testimonial) bool { return t.Featured })
}
