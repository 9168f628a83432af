package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/crumbly/api/internal/models"
)

var (
	// ErrValidation marks a malformed review submission. Nothing is persisted.
	ErrValidation = errors.New("invalid review submission")
	// ErrNotFound marks an unknown product handle or review id.
	ErrNotFound = errors.New("not found")
	// ErrLoadFailure marks a failed seed fetch or parse. The review list stays
	// empty for that attempt; the client retries by reloading.
	ErrLoadFailure = errors.New("failed to load reviews")
)

// SeedSource supplies the bundled default review dataset for an empty store.
type SeedSource interface {
	FetchSeed(ctx context.Context) ([]models.Review, error)
}

// HTTPSeedSource fetches the seed document from a URL, the way the browser
// build pulled /reviews.json when localStorage was empty.
type HTTPSeedSource struct {
	URL    string
	Client *http.Client
}

func (h *HTTPSeedSource) FetchSeed(ctx context.Context) ([]models.Review, error) {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: seed fetch returned status %d", ErrLoadFailure, resp.StatusCode)
	}

	var doc models.SeedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	return doc.Reviews, nil
}

// FileSeedSource reads the seed document bundled with the repository.
type FileSeedSource struct {
	Path string
}

func (f *FileSeedSource) FetchSeed(ctx context.Context) ([]models.Review, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	var doc models.SeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	return doc.Reviews, nil
}

// ProductReviewPage is everything a product's review section needs: aggregate
// stats over the product's full review set plus one filtered/sorted page.
type ProductReviewPage struct {
	Reviews    []models.Review `json:"reviews"`
	Stats      ReviewStats     `json:"stats"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
	Total      int             `json:"total"`
}

// ReviewService orchestrates the review engine against the store. Every
// operation works on a fresh load of the full collection so a mutation never
// writes back a stale set.
type ReviewService struct {
	store models.ReviewStore
	seed  SeedSource
}

func NewReviewService(store models.ReviewStore, seed SeedSource) *ReviewService {
	return &ReviewService{
		store: store,
		seed:  seed,
	}
}

// loadAll returns the full persisted collection, seeding the store from the
// bundled dataset the first time it comes up empty.
func (rs *ReviewService) loadAll(ctx context.Context) ([]models.Review, error) {
	reviews, err := rs.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if reviews != nil {
		return reviews, nil
	}
	if rs.seed == nil {
		return []models.Review{}, nil
	}

	seeded, err := rs.seed.FetchSeed(ctx)
	if err != nil {
		return nil, err
	}
	if seeded == nil {
		seeded = []models.Review{}
	}
	if err := rs.store.Save(ctx, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// ListProductReviews loads the product's reviews and runs them through the
// filter/sort engine, aggregates and paginator. Stats cover the product's whole
// set regardless of the active filter, matching what the review summary shows.
func (rs *ReviewService) ListProductReviews(ctx context.Context, productID int, filterRating *int, sortOption string, page, perPage int) (*ProductReviewPage, error) {
	all, err := rs.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	productReviews := make([]models.Review, 0)
	for _, r := range all {
		if r.ProductID == productID {
			productReviews = append(productReviews, r)
		}
	}

	display := FilterAndSort(productReviews, filterRating, sortOption)
	paged := Paginate(display, perPage, page)

	return &ProductReviewPage{
		Reviews:    paged.CurrentItems,
		Stats:      ComputeStats(productReviews),
		Page:       page,
		PerPage:    perPage,
		TotalPages: paged.TotalPages,
		Total:      len(display),
	}, nil
}

// SubmitReview validates a draft and appends the resulting record to the full
// collection. A failed validation leaves the store untouched.
func (rs *ReviewService) SubmitReview(ctx context.Context, draft models.ReviewDraft, product *models.Product) (*models.Review, error) {
	if !ValidateReviewForm(draft) {
		return nil, fmt.Errorf("%w: reviewer name, email, rating and comment are required", ErrValidation)
	}

	review := NewReview(draft, product.ID, product.Title)

	all, err := rs.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	all = append(all, review)
	if err := rs.store.Save(ctx, all); err != nil {
		return nil, err
	}
	return &review, nil
}

// ReactToReview toggles a like or dislike on one review and merges the updated
// record back into the persisted collection by id.
func (rs *ReviewService) ReactToReview(ctx context.Context, reviewID int64, reactionType string) (*models.Review, error) {
	all, err := rs.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i, r := range all {
		if r.ID != reviewID {
			continue
		}
		updated, err := ApplyReaction(r, reactionType)
		if err != nil {
			return nil, err
		}
		all[i] = updated
		if err := rs.store.Save(ctx, all); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	return nil, fmt.Errorf("review %d: %w", reviewID, ErrNotFound)
}
