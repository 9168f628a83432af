package services

import (
	"sync"
	"time"

	"github.com/crumbly/api/internal/helpers"
	"github.com/crumbly/api/internal/models"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// nextReviewID hands out time-based ids, bumping past the previous one when two
// submissions land in the same millisecond.
func nextReviewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// ValidateReviewForm reports whether a submission can become a review: reviewer
// name, email and comment non-empty after trim, rating above zero. Title and
// image stay optional.
func ValidateReviewForm(draft models.ReviewDraft) bool {
	draft.Sanitize()
	return models.Validate.Struct(draft) == nil
}

// NewReview builds the canonical record from a validated draft. Product
// identity comes from the caller's catalog lookup, never from the form body.
// Counters start at zero with no viewer reaction, and the date is stamped at
// creation.
func NewReview(draft models.ReviewDraft, productID int, productTitle string) models.Review {
	draft.Sanitize()

	return models.Review{
		ID:           nextReviewID(),
		ProductID:    productID,
		ProductTitle: productTitle,
		ReviewerName: draft.ReviewerName,
		Email:        draft.Email,
		Rating:       draft.Rating,
		ReviewTitle:  draft.ReviewTitle,
		Comment:      draft.Comment,
		ImageURL:     draft.ImageURL,
		Date:         helpers.FormatDate(time.Now()),
		Likes:        0,
		Dislikes:     0,
		UserReaction: models.ReactionNone,
	}
}
