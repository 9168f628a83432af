package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/crumbly/api/internal/container"
	"github.com/crumbly/api/internal/handlers"
	"github.com/crumbly/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{container.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "crumbly-api",
			})
		})
	}

	productRoutes := v1.Group("/products")
	{
		productRoutes.GET("/", handlers.ListProducts(container.CatalogService))
		productRoutes.GET("/:handle", handlers.GetProduct(container.CatalogService))
		productRoutes.GET("/:handle/reviews", handlers.ListProductReviews(container.CatalogService, container.ReviewService))
		productRoutes.POST("/:handle/reviews", handlers.SubmitReview(container.CatalogService, container.ReviewService))
	}

	reviewRoutes := v1.Group("/reviews")
	{
		reviewRoutes.POST("/:id/reactions", handlers.ReactToReview(container.ReviewService))
	}

	return r
}
