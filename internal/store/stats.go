package store

import (
	"math"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// Stats summarises the marketplace for the admin dashboard.
type Stats struct {
	Events            int     `json:"events"`
	Users             int     `json:"users"`
	Bookings          int     `json:"bookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	Reviews           int     `json:"reviews"`
	Testimonials      int     `json:"testimonials"`
	Companies         int     `json:"companies"`
	OpenQueries       int     `json:"openQueries"`
	TotalRevenue      int     `json:"totalRevenue"`
	AverageRating     float64 `json:"averageRating"`
}

func (s *DataStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Events:       s.events.count(),
		Users:        s.users.count(),
		Bookings:     s.bookings.count(),
		Reviews:      s.reviews.count(),
		Testimonials: s.testimonials.count(),
		Companies:    s.companies.count(),
	}
	for _, b := range s.bookings.items {
		st.TotalRevenue += b.TotalPrice
		if b.Status == models.BookingConfirmed {
			st.ConfirmedBookings++
		}
	}
	for _, q := range s.queries.items {
		if q.Status == models.QueryOpen {
			st.OpenQueries++
		}
	}
	if len(s.reviews.items) > 0 {
		sum := 0
		for _, r := range s.reviews.items {
			sum += r.Rating
		}
		st.AverageRating = math.Round(float64(sum)/float64(len(s.reviews.items))*10) / 10
	}
	return st
}
