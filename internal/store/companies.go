package store

import (
	"context"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

func (s *DataStore) AddCompany(ctx context.Context, c models.Company) (models.Company, error) {
	c.ID = s.newID("company")
	c.CreatedAt = s.now()
	c.Sanitize()
	if err := validate("company", c); err != nil {
		return models.Company{}, err
	}

	err := s.mutate(func() ([]Change, error) {
		s.companies.add(c)
		return s.stamp(created(CollectionCompanies, c.ID)...), s.persist(ctx, s.companies)
	})
	return c, err
}

func (s *DataStore) UpdateCompany(ctx context.Context, id string, patch models.Patch) (bool, error) {
	return updateRecord(ctx, s, s.companies, CollectionCompanies, id, patch)
}

// DeleteCompany removes the company together with every offer it made.
// Bookings that reference it are kept.
func (s *DataStore) DeleteCompany(ctx context.Context, id string) (bool, error) {
	found := false
	err := s.mutate(func() ([]Change, error) {
		removed := s.companies.removeWhere(func(c models.Company) bool { return c.ID == id })
		if len(removed) == 0 {
			return nil, nil
		}
		found = true
		offers := s.offers.removeWhere(func(o models.EventCompanyOffer) bool { return o.CompanyID == id })

		changes := deleted(CollectionCompanies, removed...)
		changes = append(changes, deleted(CollectionOffers, offers...)...)
		return s.stamp(changes...), s.persist(ctx, s.companies, s.offers)
	})
	return found, err
}

func (s *DataStore) Companies() []models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companies.all()
}

func (s *DataStore) Company(id string) (models.Company, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companies.get(id)
}

func (s *DataStore) CompaniesByOwner(userID string) []models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companies.filter(func(c models.Company) bool { return c.OwnedBy(userID) })
}
