package services

import (
	"testing"

	"github.com/crumbly/api/internal/models"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.AverageRating != "0.0" {
		t.Errorf("expected average 0.0 for empty input, got %s", stats.AverageRating)
	}
	if stats.TotalReviews != 0 {
		t.Errorf("expected 0 total reviews, got %d", stats.TotalReviews)
	}
	for rating := 1; rating <= 5; rating++ {
		if stats.RatingCounts[rating] != 0 {
			t.Errorf("expected zero count for rating %d, got %d", rating, stats.RatingCounts[rating])
		}
	}
}

func TestComputeStatsAverageAndCounts(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
		{Rating: 2},
	}

	stats := ComputeStats(reviews)

	if stats.AverageRating != "3.8" {
		t.Errorf("expected average 3.8, got %s", stats.AverageRating)
	}
	if stats.TotalReviews != 4 {
		t.Errorf("expected 4 total reviews, got %d", stats.TotalReviews)
	}
	if stats.RatingCounts[4] != 2 {
		t.Errorf("expected two 4-star reviews, got %d", stats.RatingCounts[4])
	}
	if stats.RatingCounts[3] != 0 {
		t.Errorf("expected no 3-star reviews, got %d", stats.RatingCounts[3])
	}
}

// Out-of-range ratings stay in the total and the average but are left out of
// the per-rating breakdown.
func TestComputeStatsOutOfRangeRating(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 7},
	}

	stats := ComputeStats(reviews)

	if stats.TotalReviews != 2 {
		t.Errorf("expected 2 total reviews, got %d", stats.TotalReviews)
	}
	if stats.AverageRating != "6.0" {
		t.Errorf("expected average 6.0 (sum includes out-of-range), got %s", stats.AverageRating)
	}

	counted := 0
	for rating := 1; rating <= 5; rating++ {
		counted += stats.RatingCounts[rating]
	}
	if counted != 1 {
		t.Errorf("expected rating counts to sum to 1, got %d", counted)
	}
}
