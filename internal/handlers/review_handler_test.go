package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/crumbly/api/internal/models"
	"github.com/crumbly/api/internal/services"
)

type emptySeed struct{}

func (emptySeed) FetchSeed(ctx context.Context) ([]models.Review, error) {
	return nil, nil
}

func newTestRouter(store models.ReviewStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := services.NewCatalogService([]models.Product{
		{ID: 1, Handle: "classic-chocolate-chip", Title: "Classic Chocolate Chip"},
	})
	reviews := services.NewReviewService(store, emptySeed{})

	r := gin.New()
	r.GET("/products/:handle/reviews", ListProductReviews(catalog, reviews))
	r.POST("/products/:handle/reviews", SubmitReview(catalog, reviews))
	r.POST("/reviews/:id/reactions", ReactToReview(reviews))
	return r
}

func TestListReviewsUnknownProduct(t *testing.T) {
	router := newTestRouter(models.NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/snickerdoodle/reviews", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown handle, got %d", w.Code)
	}
}

func TestSubmitReviewRoundTrip(t *testing.T) {
	router := newTestRouter(models.NewMemoryStore())

	body := `{"reviewer_name":"A","email":"a@b.com","rating":5,"comment":"Great","product_id":999}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/classic-chocolate-chip/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	data, _ := json.Marshal(resp.Data)
	var created models.Review
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("bad review payload: %v", err)
	}
	// product_id in the body must be ignored in favor of the catalog.
	if created.ProductID != 1 {
		t.Errorf("expected product id 1 from the catalog, got %d", created.ProductID)
	}

	// The new review shows up on page 1.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/products/classic-chocolate-chip/reviews?page=1", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"totalReviews":1`) {
		t.Errorf("expected one review in stats, body: %s", w.Body.String())
	}
}

func TestSubmitReviewValidationFailure(t *testing.T) {
	router := newTestRouter(models.NewMemoryStore())

	body := `{"reviewer_name":"  ","email":"a@b.com","rating":5,"comment":"Great"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/classic-chocolate-chip/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for a blank reviewer name, got %d", w.Code)
	}
}

func TestReactToReviewEndpoints(t *testing.T) {
	store := models.NewMemoryStore()
	_ = store.Save(context.Background(), []models.Review{{ID: 7, ProductID: 1, Rating: 4}})
	router := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews/7/reactions", strings.NewReader(`{"type":"like"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"likes":1`) {
		t.Errorf("expected likes=1 after first like, body: %s", w.Body.String())
	}

	// Unknown reaction type is a client error.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/reviews/7/reactions", strings.NewReader(`{"type":"love"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown reaction type, got %d", w.Code)
	}

	// Unknown review id is not found.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/reviews/999/reactions", strings.NewReader(`{"type":"like"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown review, got %d", w.Code)
	}
}
