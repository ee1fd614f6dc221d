package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

// CatalogService is the admin write path for records that carry images.
type CatalogService struct {
	data   *store.DataStore
	media  *MediaService
	logger *slog.Logger
}

func NewCatalogService(data *store.DataStore, media *MediaService, logger *slog.Logger) *CatalogService {
	return &CatalogService{data: data, media: media, logger: logger}
}

func (cs *CatalogService) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	image, err := cs.media.ResolveImage(ctx, e.Image, EventsFolder)
	if err != nil {
		return models.Event{}, err
	}
	e.Image = image
	return cs.data.AddEvent(ctx, e)
}

func (cs *CatalogService) UpdateEvent(ctx context.Context, id string, patch models.Patch) (bool, error) {
	if err := cs.media.ResolvePatch(ctx, patch, "image", EventsFolder); err != nil {
		return false, err
	}
	return cs.data.UpdateEvent(ctx, id, patch)
}

func (cs *CatalogService) CreateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	logo, err := cs.media.ResolveImage(ctx, c.Logo, LogoFolder)
	if err != nil {
		return models.Company{}, err
	}
	c.Logo = logo
	return cs.data.AddCompany(ctx, c)
}

func (cs *CatalogService) UpdateCompany(ctx context.Context, id string, patch models.Patch) (bool, error) {
	if err := cs.media.ResolvePatch(ctx, patch, "logo", LogoFolder); err != nil {
		return false, err
	}
	return cs.data.UpdateCompany(ctx, id, patch)
}

// CreateOffer requires the event and company to exist.
func (cs *CatalogService) CreateOffer(ctx context.Context, o models.EventCompanyOffer) (models.EventCompanyOffer, error) {
	if _, ok := cs.data.Event(o.EventID); !ok {
		return models.EventCompanyOffer{}, fmt.Errorf("%w: event %s", ErrNotFound, o.EventID)
	}
	if _, ok := cs.data.Company(o.CompanyID); !ok {
		return models.EventCompanyOffer{}, fmt.Errorf("%w: company %s", ErrNotFound, o.CompanyID)
	}
	gallery, err := cs.media.ResolveImages(ctx, o.GalleryImages, GalleryFolder)
	if err != nil {
		return models.EventCompanyOffer{}, err
	}
	o.GalleryImages = gallery
	return cs.data.AddOffer(ctx, o)
}

func (cs *CatalogService) UpdateOffer(ctx context.Context, id string, patch models.Patch) (bool, error) {
	if err := cs.media.ResolvePatch(ctx, patch, "galleryImages", GalleryFolder); err != nil {
		return false, err
	}
	return cs.data.UpdateOffer(ctx, id, patch)
}

func (cs *CatalogService) CreateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	image, err := cs.media.ResolveImage(ctx, t.UserImage, TestimonialFolder)
	if err != nil {
		return models.Testimonial{}, err
	}
	t.UserImage = image
	return cs.data.AddTestimonial(ctx, t)
}

func (cs *CatalogService) UpdateTestimonial(ctx context.Context, id string, patch models.Patch) (bool, error) {
	if err := cs.media.ResolvePatch(ctx, patch, "userImage", TestimonialFolder); err != nil {
		return false, err
	}
	return cs.data.UpdateTestimonial(ctx, id, patch)
}
