package services

import (
	"context"
	"errors"
	"testing"

	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	url     string
	err     error
	folders []string
}

func (f *fakeUploader) Upload(ctx context.Context, file, folder string) (string, error) {
	f.folders = append(f.folders, folder)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

const pixel = "data:image/gif;base64,R0lGODlhAQABAAAAACw="

func TestResolveImage(t *testing.T) {
	ctx := context.Background()
	up := &fakeUploader{url: "https://cdn.example/x.gif"}
	media := NewMediaService(up, discardLogger())

	got, err := media.ResolveImage(ctx, pixel, EventsFolder)
	require.NoError(t, err)
	assert.Equal(t, up.url, got)

	got, err = media.ResolveImage(ctx, "https://images.example/hall.jpg", EventsFolder)
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/hall.jpg", got)
	assert.Len(t, up.folders, 1)

	up.err = errors.New("quota exceeded")
	_, err = media.ResolveImage(ctx, pixel, EventsFolder)
	require.Error(t, err)
}

func TestResolveImageWithoutUploader(t *testing.T) {
	media := NewMediaService(nil, discardLogger())
	got, err := media.ResolveImage(context.Background(), pixel, EventsFolder)
	require.NoError(t, err)
	assert.Equal(t, pixel, got)

	var none *MediaService
	got, err = none.ResolveImage(context.Background(), pixel, EventsFolder)
	require.NoError(t, err)
	assert.Equal(t, pixel, got)
}

func TestResolvePatch(t *testing.T) {
	ctx := context.Background()
	up := &fakeUploader{url: "https://cdn.example/y.gif"}
	media := NewMediaService(up, discardLogger())

	patch := models.Patch{
		"image":         pixel,
		"galleryImages": []interface{}{pixel, "https://keep.example/a.jpg", 3},
		"title":         "unchanged",
	}
	require.NoError(t, media.ResolvePatch(ctx, patch, "image", EventsFolder))
	require.NoError(t, media.ResolvePatch(ctx, patch, "galleryImages", GalleryFolder))
	require.NoError(t, media.ResolvePatch(ctx, patch, "missing", GalleryFolder))

	assert.Equal(t, up.url, patch["image"])
	assert.Equal(t, []interface{}{up.url, "https://keep.example/a.jpg", 3}, patch["galleryImages"])
	assert.Equal(t, "unchanged", patch["title"])
	assert.Equal(t, []string{EventsFolder, GalleryFolder}, up.folders)
}
