package models

import "testing"

func TestDraftSanitizeTrims(t *testing.T) {
	draft := ReviewDraft{
		ReviewerName: "  Maya K. ",
		Email:        "\tmaya@example.com\n",
		ReviewTitle:  "   ",
		Comment:      " Lovely ",
		ImageURL:     " /images/reviews/a.jpg ",
	}

	draft.Sanitize()

	if draft.ReviewerName != "Maya K." {
		t.Errorf("reviewer name not trimmed: %q", draft.ReviewerName)
	}
	if draft.Email != "maya@example.com" {
		t.Errorf("email not trimmed: %q", draft.Email)
	}
	if draft.ReviewTitle != "" {
		t.Errorf("whitespace-only title should become empty, got %q", draft.ReviewTitle)
	}
	if draft.ImageURL != "/images/reviews/a.jpg" {
		t.Errorf("image url not trimmed: %q", draft.ImageURL)
	}
}

func TestHasImage(t *testing.T) {
	if (Review{}).HasImage() {
		t.Error("review without image_url should report no image")
	}
	if !(Review{ImageURL: "data:image/png;base64,AAAA"}).HasImage() {
		t.Error("review with a data URI should report an image")
	}
}
