package store

import (
	"context"
	"slices"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// AddBooking stores a new booking. The total is priced from the matching
// offer or the event; when neither exists the caller's TotalPrice is kept.
// Referenced records and event capacity are not checked.
func (s *DataStore) AddBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	b, _, err := s.addBooking(ctx, b, false)
	return b, err
}

// AddBookingOnce is AddBooking that refuses a second booking by the same
// user for the same event. ok is false when one already exists.
func (s *DataStore) AddBookingOnce(ctx context.Context, b models.Booking) (models.Booking, bool, error) {
	return s.addBooking(ctx, b, true)
}

func (s *DataStore) addBooking(ctx context.Context, b models.Booking, once bool) (models.Booking, bool, error) {
	b.ID = s.newID("booking")
	b.CreatedAt = s.now()
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	if b.Urgency == "" {
		b.Urgency = models.UrgencyStandard
	}
	if err := validate("booking", b); err != nil {
		return models.Booking{}, false, err
	}

	ok := true
	err := s.mutate(func() ([]Change, error) {
		if once && s.hasBookingLocked(b.UserID, b.EventID) {
			ok = false
			return nil, nil
		}
		if base, found := s.basePriceLocked(b.EventID, b.CompanyID); found {
			b.TotalPrice = QuoteBooking(base, b.Urgency)
		}
		s.bookings.add(b)
		return s.stamp(created(CollectionBookings, b.ID)...), s.persist(ctx, s.bookings)
	})
	if !ok {
		return models.Booking{}, false, err
	}
	return b, true, err
}

// UpdateBooking merges patch into the booking. A missing id is a no-op and
// reports false.
func (s *DataStore) UpdateBooking(ctx context.Context, id string, patch models.Patch) (bool, error) {
	return updateRecord(ctx, s, s.bookings, CollectionBookings, id, patch)
}

func (s *DataStore) DeleteBooking(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, s.bookings, CollectionBookings, id)
}

// DeleteAllBookings removes every booking made by userID and returns how
// many were removed.
func (s *DataStore) DeleteAllBookings(ctx context.Context, userID string) (int, error) {
	var removed []string
	err := s.mutate(func() ([]Change, error) {
		removed = s.bookings.removeWhere(func(b models.Booking) bool { return b.UserID == userID })
		if len(removed) == 0 {
			return nil, nil
		}
		return s.stamp(deleted(CollectionBookings, removed...)...), s.persist(ctx, s.bookings)
	})
	return len(removed), err
}

func (s *DataStore) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings.all()
}

func (s *DataStore) Booking(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings.get(id)
}

func (s *DataStore) BookingsByUser(userID string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings.filter(func(b models.Booking) bool { return b.UserID == userID })
}

// BookingsForCompanies lists bookings placed with any of companyIDs,
// optionally narrowed to one status.
func (s *DataStore) BookingsForCompanies(companyIDs []string, status models.BookingStatus) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings.filter(func(b models.Booking) bool {
		if status != "" && b.Status != status {
			return false
		}
		return slices.Contains(companyIDs, b.CompanyID)
	})
}

func (s *DataStore) HasBooking(userID, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasBookingLocked(userID, eventID)
}

func (s *DataStore) hasBookingLocked(userID, eventID string) bool {
	_, found := s.bookings.find(func(b models.Booking) bool {
		return b.UserID == userID && b.EventID == eventID
	})
	return found
}
