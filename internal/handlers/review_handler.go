package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/crumbly/api/internal/models"
	"github.com/crumbly/api/internal/services"
)

const defaultReviewsPerPage = 5

// ListProductReviews serves the review section of a product page: aggregate
// stats plus one filtered, sorted, paginated slice of reviews.
func ListProductReviews(catalog *services.CatalogService, reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.FindByHandle(strings.TrimSpace(c.Param("handle")))
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("product not found"))
			return
		}

		var filterRating *int
		if raw := c.Query("rating"); raw != "" {
			rating, err := strconv.Atoi(raw)
			if err != nil || rating < 1 || rating > 5 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid rating filter"))
				return
			}
			filterRating = &rating
		}

		sortOption := c.DefaultQuery("sort", services.SortHighestRating)

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid page parameter"))
			return
		}
		perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultReviewsPerPage)))
		if err != nil || perPage <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid per_page parameter"))
			return
		}

		result, err := reviews.ListProductReviews(c.Request.Context(), product.ID, filterRating, sortOption, page, perPage)
		if err != nil {
			if errors.Is(err, services.ErrLoadFailure) {
				c.JSON(http.StatusBadGateway, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(result, result.Page, result.PerPage, result.TotalPages, result.Total))
	}
}

// SubmitReview accepts a review draft for a product. Product id and title come
// from the catalog, never from the request body.
func SubmitReview(catalog *services.CatalogService, reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.FindByHandle(strings.TrimSpace(c.Param("handle")))
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("product not found"))
			return
		}

		var draft models.ReviewDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := reviews.SubmitReview(c.Request.Context(), draft, product)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(err.Error()))
			case errors.Is(err, services.ErrLoadFailure):
				c.JSON(http.StatusBadGateway, models.ErrorResponse(err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			}
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Review submitted successfully"))
	}
}

type reactionRequest struct {
	Type string `json:"type" binding:"required"`
}

// ReactToReview toggles a like or dislike on a single review.
func ReactToReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid review ID format"))
			return
		}

		var req reactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if req.Type != services.ReactionTypeLike && req.Type != services.ReactionTypeDislike {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("reaction type must be like or dislike"))
			return
		}

		updated, err := reviews.ReactToReview(c.Request.Context(), reviewID, req.Type)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, models.ErrorResponse("review not found"))
			case errors.Is(err, services.ErrLoadFailure):
				c.JSON(http.StatusBadGateway, models.ErrorResponse(err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			}
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, ""))
	}
}
