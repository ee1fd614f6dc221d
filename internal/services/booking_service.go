package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

type BookingService struct {
	data   *store.DataStore
	logger *slog.Logger
}

func NewBookingService(data *store.DataStore, logger *slog.Logger) *BookingService {
	return &BookingService{data: data, logger: logger}
}

type BookingRequest struct {
	EventID   string         `json:"eventId" binding:"required"`
	CompanyID string         `json:"companyId" binding:"required"`
	Date      time.Time      `json:"date"`
	Time      string         `json:"time" binding:"required"`
	Urgency   models.Urgency `json:"urgency"`
}

// Book places a pending booking for a user. Only accounts with the user role
// may book, and each user books an event at most once.
func (bs *BookingService) Book(ctx context.Context, userID string, role models.Role, req BookingRequest) (models.Booking, error) {
	if role != models.RoleUser {
		return models.Booking{}, fmt.Errorf("%w: only users can book events", ErrForbidden)
	}
	if req.Date.IsZero() {
		return models.Booking{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, ok := bs.data.Event(req.EventID); !ok {
		return models.Booking{}, fmt.Errorf("%w: event %s", ErrNotFound, req.EventID)
	}
	if _, ok := bs.data.Company(req.CompanyID); !ok {
		return models.Booking{}, fmt.Errorf("%w: company %s", ErrNotFound, req.CompanyID)
	}

	b, ok, err := bs.data.AddBookingOnce(ctx, models.Booking{
		UserID:    userID,
		EventID:   req.EventID,
		CompanyID: req.CompanyID,
		Date:      req.Date,
		Time:      req.Time,
		Urgency:   req.Urgency,
		Status:    models.BookingPending,
	})
	if err != nil {
		return models.Booking{}, err
	}
	if !ok {
		return models.Booking{}, ErrAlreadyBooked
	}
	bs.logger.Info("Booking created", "booking_id", b.ID, "user_id", userID, "event_id", b.EventID, "total", b.TotalPrice)
	return b, nil
}

func (bs *BookingService) MyBookings(userID string) []models.Booking {
	return bs.data.BookingsByUser(userID)
}

// ClearMyBookings removes every booking the user made.
func (bs *BookingService) ClearMyBookings(ctx context.Context, userID string) (int, error) {
	n, err := bs.data.DeleteAllBookings(ctx, userID)
	if err != nil {
		return n, err
	}
	bs.logger.Info("Bookings cleared", "user_id", userID, "count", n)
	return n, nil
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// Review records the user's review of the event behind one of their
// confirmed bookings. A user reviews an event at most once.
func (bs *BookingService) Review(ctx context.Context, userID, bookingID string, req ReviewRequest) (models.Review, error) {
	b, ok := bs.data.Booking(bookingID)
	if !ok {
		return models.Review{}, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	if b.UserID != userID {
		return models.Review{}, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}
	if b.Status != models.BookingConfirmed {
		return models.Review{}, ErrNotConfirmed
	}
	if strings.TrimSpace(req.Comment) == "" {
		return models.Review{}, fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	r, ok, err := bs.data.AddReviewOnce(ctx, models.Review{
		UserID:    userID,
		EventID:   b.EventID,
		BookingID: b.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return models.Review{}, err
	}
	if !ok {
		return models.Review{}, ErrAlreadyReviewed
	}
	return r, nil
}
