package services

import (
	"context"
	"testing"

	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUploadsImages(t *testing.T) {
	ctx := context.Background()
	data, _ := newTestData(t)
	up := &fakeUploader{url: "https://cdn.example/img.png"}
	catalog := NewCatalogService(data, NewMediaService(up, discardLogger()), discardLogger())

	ev, err := catalog.CreateEvent(ctx, models.Event{Title: "Haldi", Category: "Wedding", Price: 30000, Image: pixel})
	require.NoError(t, err)
	assert.Equal(t, up.url, ev.Image)

	ok, err := catalog.UpdateEvent(ctx, ev.ID, models.Patch{"image": pixel, "price": 32000})
	require.NoError(t, err)
	require.True(t, ok)
	got, _ := data.Event(ev.ID)
	assert.Equal(t, 32000, got.Price)

	o, err := catalog.CreateOffer(ctx, models.EventCompanyOffer{
		EventID:       ev.ID,
		CompanyID:     "company_1",
		Price:         28000,
		GalleryImages: []string{pixel, "https://keep.example/b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{up.url, "https://keep.example/b.jpg"}, o.GalleryImages)

	tm, err := catalog.CreateTestimonial(ctx, models.Testimonial{UserName: "Isha", Rating: 5, Comment: "Magic", UserImage: pixel})
	require.NoError(t, err)
	assert.Equal(t, up.url, tm.UserImage)

	c, err := catalog.CreateCompany(ctx, models.Company{Name: "Baraat Beats", Logo: pixel})
	require.NoError(t, err)
	assert.Equal(t, up.url, c.Logo)
	assert.Empty(t, c.OwnerID)

	assert.Equal(t, []string{EventsFolder, EventsFolder, GalleryFolder, TestimonialFolder, LogoFolder}, up.folders)
}

func TestCreateOfferNeedsEventAndCompany(t *testing.T) {
	ctx := context.Background()
	data, _ := newTestData(t)
	catalog := NewCatalogService(data, NewMediaService(nil, discardLogger()), discardLogger())

	_, err := catalog.CreateOffer(ctx, models.EventCompanyOffer{EventID: "404", CompanyID: "company_1", Price: 1})
	require.ErrorIs(t, err, ErrNotFound)
	_, err = catalog.CreateOffer(ctx, models.EventCompanyOffer{EventID: "1", CompanyID: "company_404", Price: 1})
	require.ErrorIs(t, err, ErrNotFound)

	ok, err := catalog.UpdateOffer(ctx, "offer_404", models.Patch{"price": 5})
	require.NoError(t, err)
	assert.False(t, ok)
}
