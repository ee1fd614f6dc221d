package store

import (
	"math"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// QuoteBooking prices a booking: round(basePrice × urgency multiplier).
func QuoteBooking(basePrice int, urgency models.Urgency) int {
	return int(math.Round(float64(basePrice) * urgency.Multiplier()))
}

// BasePrice is the price of the company's offer for the event when one
// exists, otherwise the event price. ok is false when neither resolves.
func (s *DataStore) BasePrice(eventID, companyID string) (price int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basePriceLocked(eventID, companyID)
}

func (s *DataStore) basePriceLocked(eventID, companyID string) (int, bool) {
	if companyID != "" {
		if offer, found := s.offers.find(func(o models.EventCompanyOffer) bool {
			return o.EventID == eventID && o.CompanyID == companyID
		}); found {
			return offer.Price, true
		}
	}
	if ev, found := s.events.get(eventID); found {
		return ev.Price, true
	}
	return 0, false
}
