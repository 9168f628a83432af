package container

import (
	"log/slog"

	"github.com/crumbly/api/internal/models"
	"github.com/crumbly/api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	ReviewStore    models.ReviewStore
	ReviewService  *services.ReviewService
	CatalogService *services.CatalogService
	AllowedOrigin  string
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	store models.ReviewStore,
	seed services.SeedSource,
	catalog *services.CatalogService,
	allowedOrigin string,
) *Container {
	reviewService := services.NewReviewService(store, seed)

	return &Container{
		Logger:         logger,
		ReviewStore:    store,
		ReviewService:  reviewService,
		CatalogService: catalog,
		AllowedOrigin:  allowedOrigin,
	}
}
