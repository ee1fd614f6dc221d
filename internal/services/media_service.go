package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/models"
)

// Cloudinary folders per kind of image.
const (
	EventsFolder      = "events"
	LogoFolder        = "logos"
	GalleryFolder     = "galleries"
	TestimonialFolder = "testimonials"
)

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, file, folder string) (string, error)
}

// MediaService swaps inline data URIs for hosted URLs. Without an uploader
// values are returned unchanged.
type MediaService struct {
	uploader ImageUploader
	logger   *slog.Logger
}

func NewMediaService(uploader ImageUploader, logger *slog.Logger) *MediaService {
	return &MediaService{uploader: uploader, logger: logger}
}

func (m *MediaService) ResolveImage(ctx context.Context, value, folder string) (string, error) {
	if m == nil || m.uploader == nil || !helpers.IsDataURI(value) {
		return value, nil
	}
	url, err := m.uploader.Upload(ctx, value, folder)
	if err != nil {
		m.logger.Error("Image upload failed", "folder", folder, "error", err)
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}

func (m *MediaService) ResolveImages(ctx context.Context, values []string, folder string) ([]string, error) {
	if len(values) == 0 {
		return values, nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		url, err := m.ResolveImage(ctx, v, folder)
		if err != nil {
			return nil, err
		}
		out = append(out, url)
	}
	return out, nil
}

// ResolvePatch uploads data URIs found under field in a patch. String fields
// and string lists are both handled.
func (m *MediaService) ResolvePatch(ctx context.Context, patch models.Patch, field, folder string) error {
	switch v := patch[field].(type) {
	case string:
		url, err := m.ResolveImage(ctx, v, folder)
		if err != nil {
			return err
		}
		patch[field] = url
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				out = append(out, item)
				continue
			}
			url, err := m.ResolveImage(ctx, s, folder)
			if err != nil {
				return err
			}
			out = append(out, url)
		}
		patch[field] = out
	}
	return nil
}
