package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadTag marks every asset this service stores in Cloudinary.
const UploadTag = "eventconnect"

// IsDataURI reports whether value is an inline image, e.g.
// "data:image/png;base64,....".
func IsDataURI(value string) bool {
	value = strings.TrimSpace(value)
	return strings.HasPrefix(value, "data:image/") && strings.Contains(value, ",")
}

// StringTrim trims whitespace and surrounding quotes, which show up when
// clients template ids into URLs.
func StringTrim(value string) string {
	value = strings.TrimSpace(value)
	return strings.Trim(value, "\"'")
}

// CloudinaryUploader uploads images into a Cloudinary account.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

// Upload accepts anything Cloudinary does as a file: a URL, a path or a
// data URI.
func (u *CloudinaryUploader) Upload(ctx context.Context, file, folder string) (string, error) {
	if strings.TrimSpace(file) == "" {
		return "", fmt.Errorf("empty image")
	}
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{UploadTag},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected image: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}
