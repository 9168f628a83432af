package services

import (
	"sort"

	"github.com/crumbly/api/internal/models"
)

const (
	SortHighestRating = "highest-rating"
	SortLowestRating  = "lowest-rating"
	SortOnlyPictures  = "only-pictures"
	SortMostHelpful   = "most-helpful"
)

// FilterAndSort narrows a review collection to an optional exact rating match
// and orders it by the given sort option. Sorting is stable, ties keep their
// original relative order. The only-pictures option additionally drops reviews
// without a photo on top of any active rating filter. Unrecognized options fall
// back to highest rating first. The input slice is left untouched.
func FilterAndSort(reviews []models.Review, filterRating *int, sortOption string) []models.Review {
	filtered := reviews
	if filterRating != nil {
		filtered = make([]models.Review, 0, len(reviews))
		for _, r := range reviews {
			if r.Rating == *filterRating {
				filtered = append(filtered, r)
			}
		}
	}

	sorted := make([]models.Review, len(filtered))
	copy(sorted, filtered)

	switch sortOption {
	case SortLowestRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	case SortOnlyPictures:
		withPhotos := sorted[:0]
		for _, r := range sorted {
			if r.HasImage() {
				withPhotos = append(withPhotos, r)
			}
		}
		sorted = withPhotos
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortMostHelpful:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Likes > sorted[j].Likes })
	default:
		// SortHighestRating and anything unrecognized.
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}

	return sorted
}
