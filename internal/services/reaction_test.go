package services

import (
	"testing"

	"github.com/crumbly/api/internal/models"
)

func TestApplyReactionStateMachine(t *testing.T) {
	cases := []struct {
		name         string
		start        models.Reaction
		likes        int
		dislikes     int
		action       string
		wantState    models.Reaction
		wantLikes    int
		wantDislikes int
	}{
		{"like from none", models.ReactionNone, 0, 0, ReactionTypeLike, models.ReactionLiked, 1, 0},
		{"dislike from none", models.ReactionNone, 0, 0, ReactionTypeDislike, models.ReactionDisliked, 0, 1},
		{"like toggles off", models.ReactionLiked, 3, 0, ReactionTypeLike, models.ReactionNone, 2, 0},
		{"dislike toggles off", models.ReactionDisliked, 0, 2, ReactionTypeDislike, models.ReactionNone, 0, 1},
		{"like flips dislike", models.ReactionDisliked, 1, 4, ReactionTypeLike, models.ReactionLiked, 2, 3},
		{"dislike flips like", models.ReactionLiked, 4, 1, ReactionTypeDislike, models.ReactionDisliked, 3, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			review := models.Review{ID: 1, Likes: tc.likes, Dislikes: tc.dislikes, UserReaction: tc.start}

			updated, err := ApplyReaction(review, tc.action)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.UserReaction != tc.wantState {
				t.Errorf("expected state %q, got %q", tc.wantState, updated.UserReaction)
			}
			if updated.Likes != tc.wantLikes {
				t.Errorf("expected %d likes, got %d", tc.wantLikes, updated.Likes)
			}
			if updated.Dislikes != tc.wantDislikes {
				t.Errorf("expected %d dislikes, got %d", tc.wantDislikes, updated.Dislikes)
			}
		})
	}
}

// Counters never go below zero even when the stored counts are already
// inconsistent with the reaction state.
func TestApplyReactionFloorsAtZero(t *testing.T) {
	review := models.Review{ID: 1, Likes: 0, Dislikes: 0, UserReaction: models.ReactionDisliked}

	updated, err := ApplyReaction(review, ReactionTypeDislike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Dislikes != 0 {
		t.Errorf("expected dislikes floored at 0, got %d", updated.Dislikes)
	}
	if updated.UserReaction != models.ReactionNone {
		t.Errorf("expected reaction cleared, got %q", updated.UserReaction)
	}
}

func TestApplyReactionDoesNotMutateInput(t *testing.T) {
	review := models.Review{ID: 1, Likes: 2, UserReaction: models.ReactionNone}

	if _, err := ApplyReaction(review, ReactionTypeLike); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Likes != 2 || review.UserReaction != models.ReactionNone {
		t.Error("input review was mutated")
	}
}

func TestApplyReactionUnknownType(t *testing.T) {
	if _, err := ApplyReaction(models.Review{}, "love"); err == nil {
		t.Error("expected an error for an unsupported reaction type")
	}
}
