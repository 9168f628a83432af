package services

import (
	"fmt"

	"github.com/crumbly/api/internal/models"
)

// ReviewStats aggregates the rating distribution of a review collection.
type ReviewStats struct {
	AverageRating string      `json:"averageRating"`
	TotalReviews  int         `json:"totalReviews"`
	RatingCounts  map[int]int `json:"ratingCounts"`
}

// ComputeStats derives rating aggregates from the given reviews. TotalReviews
// and the average count every record, but RatingCounts only buckets ratings in
// 1..5; anything outside that range is left out of the breakdown.
func ComputeStats(reviews []models.Review) ReviewStats {
	counts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			counts[r.Rating]++
		}
	}

	total := len(reviews)
	avg := "0.0"
	if total > 0 {
		avg = fmt.Sprintf("%.1f", float64(sum)/float64(total))
	}

	return ReviewStats{
		AverageRating: avg,
		TotalReviews:  total,
		RatingCounts:  counts,
	}
}
