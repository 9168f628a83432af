package services

import (
	"fmt"

	"github.com/crumbly/api/internal/models"
)

const (
	ReactionTypeLike    = "like"
	ReactionTypeDislike = "dislike"
)

// ApplyReaction toggles a viewer's like/dislike on a review and returns the
// updated copy; the input is never mutated. The two reactions are mutually
// exclusive and counters are floored at zero, so any call sequence is safe.
func ApplyReaction(review models.Review, reactionType string) (models.Review, error) {
	updated := review

	switch reactionType {
	case ReactionTypeLike:
		if updated.UserReaction == models.ReactionLiked {
			updated.Likes = max(0, updated.Likes-1)
			updated.UserReaction = models.ReactionNone
		} else {
			if updated.UserReaction == models.ReactionDisliked {
				updated.Dislikes = max(0, updated.Dislikes-1)
			}
			updated.Likes++
			updated.UserReaction = models.ReactionLiked
		}
	case ReactionTypeDislike:
		if updated.UserReaction == models.ReactionDisliked {
			updated.Dislikes = max(0, updated.Dislikes-1)
			updated.UserReaction = models.ReactionNone
		} else {
			if updated.UserReaction == models.ReactionLiked {
				updated.Likes = max(0, updated.Likes-1)
			}
			updated.Dislikes++
			updated.UserReaction = models.ReactionDisliked
		}
	default:
		return review, fmt.Errorf("unsupported reaction type: %s (expected like, dislike)", reactionType)
	}

	return updated, nil
}
