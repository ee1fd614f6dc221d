package container

import (
	"log/slog"

	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/storage"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	KV     storage.KVStore
	Data   *store.DataStore
	Tokens *helpers.TokenIssuer

	AuthService    *services.AuthService
	BookingService *services.BookingService
	PlannerService *services.PlannerService
	CatalogService *services.CatalogService
	MediaService   *services.MediaService
	CORSOrigins    []string
	SecureCookies  bool
}

type Options struct {
	Logger      *slog.Logger
	KV          storage.KVStore
	Data        *store.DataStore
	Tokens      *helpers.TokenIssuer
	Uploader    services.ImageUploader
	Auth        services.AuthOptions
	CORSOrigins []string
	// SecureCookies marks session cookies Secure; set in production.
	SecureCookies bool
}

// NewContainer creates a new dependency injection container
func NewContainer(opts Options) *Container {
	media := services.NewMediaService(opts.Uploader, opts.Logger)
	if opts.Auth.Logger == nil {
		opts.Auth.Logger = opts.Logger
	}

	return &Container{
		Logger:         opts.Logger,
		KV:             opts.KV,
		Data:           opts.Data,
		Tokens:         opts.Tokens,
		AuthService:    services.NewAuthService(opts.Data, opts.KV, opts.Auth),
		BookingService: services.NewBookingService(opts.Data, opts.Logger),
		PlannerService: services.NewPlannerService(opts.Data, media, opts.Logger),
		CatalogService: services.NewCatalogService(opts.Data, media, opts.Logger),
		MediaService:   media,
		CORSOrigins:    opts.CORSOrigins,
		SecureCookies:  opts.SecureCookies,
	}
}
