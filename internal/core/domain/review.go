package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrDuplicateReview = errors.New("user has already reviewed this movie")
var ErrNotReviewOwner = errors.New("can only modify your own review")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is a rating and comment by one user about one movie. At most one
// review exists per (AuthorID, MovieID) pair; only the author may mutate it.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	MovieID   string    `json:"movie_id" bson:"movie_id"`
	Author    *User     `json:"author,omitempty" bson:"-"`
	Movie     *Movie    `json:"movie,omitempty" bson:"-"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidRating reports whether r is inside the 1..5 inclusive window.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}

// CanMutate is the single ownership rule of the system.
func CanMutate(resourceOwnerID, callerID string) bool {
	return resourceOwnerID == callerID
}

// Sanitized returns a copy of the review fit for responses: the embedded
// author loses its password hash and the embedded movie loses its own
// review collection so the catalog entry is not re-embedded recursively.
// Idempotent.
func (r *Review) Sanitized() *Review {
	if r == nil {
		return nil
	}
	clean := *r
	clean.Author = r.Author.Sanitized()
	if r.Movie != nil {
		movie := *r.Movie
		movie.Reviews = nil
		clean.Movie = &movie
	}
	return &clean
}
