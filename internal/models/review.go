package models

import (
	"github.com/crumbly/api/internal/helpers"
)

// Reaction is a viewer's like/dislike state on a single review.
// The zero value means the viewer has not reacted.
type Reaction string

const (
	ReactionNone     Reaction = ""
	ReactionLiked    Reaction = "liked"
	ReactionDisliked Reaction = "disliked"
)

// Review is the canonical persisted record. All fields are set at creation;
// only Likes, Dislikes and UserReaction change afterwards.
type Review struct {
	ID           int64    `bson:"id" json:"id"`
	ProductID    int      `bson:"product_id" json:"product_id"`
	ProductTitle string   `bson:"product_title" json:"product_title"`
	ReviewerName string   `bson:"reviewer_name" json:"reviewer_name"`
	Email        string   `bson:"email" json:"email"`
	Rating       int      `bson:"rating" json:"rating"`
	ReviewTitle  string   `bson:"review_title,omitempty" json:"review_title,omitempty"`
	Comment      string   `bson:"comment" json:"comment"`
	ImageURL     string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Date         string   `bson:"date" json:"date"`
	Likes        int      `bson:"likes" json:"likes"`
	Dislikes     int      `bson:"dislikes" json:"dislikes"`
	UserReaction Reaction `bson:"user_reaction,omitempty" json:"userReaction,omitempty"`
}

// HasImage reports whether the review carries a photo (data URI or remote URL).
func (r Review) HasImage() bool {
	return r.ImageURL != ""
}

// ReviewDraft is the in-progress form state before validation. Product identity
// is never taken from the draft; the caller supplies it from the catalog.
type ReviewDraft struct {
	ReviewerName string `json:"reviewer_name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Rating       int    `json:"rating" validate:"required,gt=0"`
	ReviewTitle  string `json:"review_title,omitempty"`
	Comment      string `json:"comment" validate:"required"`
	ImageURL     string `json:"image_url,omitempty"`
}

// Sanitize trims whitespace from all free-text fields.
func (d *ReviewDraft) Sanitize() {
	d.ReviewerName = helpers.StringTrim(d.ReviewerName)
	d.Email = helpers.StringTrim(d.Email)
	d.ReviewTitle = helpers.StringTrim(d.ReviewTitle)
	d.Comment = helpers.StringTrim(d.Comment)
	d.ImageURL = helpers.StringTrim(d.ImageURL)
}
