package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/crumbly/api/internal/models"
	"github.com/crumbly/api/internal/services"
)

// ListProducts serves the full catalog for the index page.
func ListProducts(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(catalog.List(), ""))
	}
}

// GetProduct looks a single product up by its URL handle.
func GetProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := strings.TrimSpace(c.Param("handle"))
		if handle == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("product handle is required"))
			return
		}

		product, err := catalog.FindByHandle(handle)
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("product not found"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(product, ""))
	}
}
