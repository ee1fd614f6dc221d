package store

import (
	"context"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// AddOffer stores a new offer. Several offers for the same event and company
// may coexist; pricing uses the first.
func (s *DataStore) AddOffer(ctx context.Context, o models.EventCompanyOffer) (models.EventCompanyOffer, error) {
	o.ID = s.newID("offer")
	o.CreatedAt = s.now()
	o.Sanitize()
	for i := range o.Testimonials {
		if o.Testimonials[i].ID == "" {
			o.Testimonials[i].ID = s.newID("testimonial")
		}
	}
	if err := validate("offer", o); err != nil {
		return models.EventCompanyOffer{}, err
	}

	err := s.mutate(func() ([]Change, error) {
		s.offers.add(o)
		return s.stamp(created(CollectionOffers, o.ID)...), s.persist(ctx, s.offers)
	})
	return o.Clone(), err
}

func (s *DataStore) UpdateOffer(ctx context.Context, id string, patch models.Patch) (bool, error) {
	return updateRecord(ctx, s, s.offers, CollectionOffers, id, patch)
}

func (s *DataStore) DeleteOffer(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, s.offers, CollectionOffers, id)
}

func (s *DataStore) Offers() []models.EventCompanyOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers.all()
}

func (s *DataStore) Offer(id string) (models.EventCompanyOffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers.get(id)
}

func (s *DataStore) OffersForEvent(eventID string) []models.EventCompanyOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers.filter(func(o models.EventCompanyOffer) bool { return o.EventID == eventID })
}

// OfferFor returns the first offer the company made for the event.
func (s *DataStore) OfferFor(eventID, companyID string) (models.EventCompanyOffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers.find(func(o models.EventCompanyOffer) bool {
		return o.EventID == eventID && o.CompanyID == companyID
	})
}
