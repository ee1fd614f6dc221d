package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

// PlannerService covers what a planner does with the companies they own.
type PlannerService struct {
	data   *store.DataStore
	media  *MediaService
	logger *slog.Logger
}

func NewPlannerService(data *store.DataStore, media *MediaService, logger *slog.Logger) *PlannerService {
	return &PlannerService{data: data, media: media, logger: logger}
}

// RegisterCompany creates a company owned by the planner.
func (ps *PlannerService) RegisterCompany(ctx context.Context, plannerID string, c models.Company) (models.Company, error) {
	logo, err := ps.media.ResolveImage(ctx, c.Logo, LogoFolder)
	if err != nil {
		return models.Company{}, err
	}
	c.Logo = logo
	c.OwnerID = plannerID
	return ps.data.AddCompany(ctx, c)
}

func (ps *PlannerService) Companies(plannerID string) []models.Company {
	return ps.data.CompaniesByOwner(plannerID)
}

// Requests lists bookings placed with the planner's companies, optionally
// narrowed to one status.
func (ps *PlannerService) Requests(plannerID string, status models.BookingStatus) []models.Booking {
	companies := ps.data.CompaniesByOwner(plannerID)
	if len(companies) == 0 {
		return []models.Booking{}
	}
	ids := make([]string, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}
	return ps.data.BookingsForCompanies(ids, status)
}

// RespondToRequest confirms or cancels a booking placed with one of the
// planner's companies.
func (ps *PlannerService) RespondToRequest(ctx context.Context, plannerID, bookingID string, status models.BookingStatus) (models.Booking, error) {
	if status != models.BookingConfirmed && status != models.BookingCancelled {
		return models.Booking{}, fmt.Errorf("%w: status must be confirmed or cancelled", ErrInvalidInput)
	}
	b, ok := ps.data.Booking(bookingID)
	if !ok {
		return models.Booking{}, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	company, ok := ps.data.Company(b.CompanyID)
	if !ok || !company.OwnedBy(plannerID) {
		return models.Booking{}, fmt.Errorf("%w: booking is not for your company", ErrForbidden)
	}

	found, err := ps.data.UpdateBooking(ctx, bookingID, models.Patch{"status": status})
	if err != nil {
		return models.Booking{}, err
	}
	if !found {
		return models.Booking{}, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	ps.logger.Info("Booking request answered", "booking_id", bookingID, "planner_id", plannerID, "status", status)

	b, _ = ps.data.Booking(bookingID)
	return b, nil
}
