package models

import (
	"fmt"
	"time"
)

const (
	MinReviewRating = 1
	MaxReviewRating = 10
)

type Review struct {
	Movie     *Movie
	User      *User
	Text      string
	Rating    *int
	createdAt time.Time
}

// NewReview builds an unlinked review. Use MakeReview to attach it to its
// user and movie. Ratings outside 1..10 are dropped with a diagnostic.
func NewReview(movie *Movie, user *User, text string, rating int) (*Review, Diagnostics) {
	return NewReviewAt(movie, user, text, rating, time.Now().UTC())
}

// NewReviewAt is NewReview with an explicit creation time, for imported data.
func NewReviewAt(movie *Movie, user *User, text string, rating int, createdAt time.Time) (*Review, Diagnostics) {
	var diags Diagnostics
	r := &Review{
		Movie:     movie,
		User:      user,
		Text:      text,
		createdAt: createdAt,
	}
	if rating >= MinReviewRating && rating <= MaxReviewRating {
		value := rating
		r.Rating = &value
	} else {
		diags.add("review", "rating", rating, fmt.Sprintf("must be between %d and %d", MinReviewRating, MaxReviewRating))
	}
	return r, diags
}

// RestoreReview rebuilds a stored review with its original creation time.
func RestoreReview(movie *Movie, user *User, text string, rating *int, createdAt time.Time) *Review {
	return &Review{
		Movie:     movie,
		User:      user,
		Text:      text,
		Rating:    rating,
		createdAt: createdAt,
	}
}

func (r *Review) CreatedAt() time.Time { return r.createdAt }

func (r *Review) Equal(other *Review) bool {
	if r.Text != other.Text || !r.createdAt.Equal(other.createdAt) {
		return false
	}
	if (r.Rating == nil) != (other.Rating == nil) || (r.Rating != nil && *r.Rating != *other.Rating) {
		return false
	}
	if r.Movie == nil || other.Movie == nil {
		return r.Movie == other.Movie
	}
	return r.Movie.Equal(other.Movie)
}

func (r *Review) String() string {
	return fmt.Sprintf("<Review %v>", r.Movie)
}

// MakeReview creates a review and links it from both the user and the movie
// in one step.
func MakeReview(text string, user *User, movie *Movie, rating int) (*Review, Diagnostics, error) {
	if user == nil {
		return nil, nil, NewIntegrityError("make review", "review requires a user")
	}
	if movie == nil {
		return nil, nil, NewIntegrityError("make review", "review requires a movie")
	}
	review, diags := NewReview(movie, user, text, rating)
	if err := AttachReview(review); err != nil {
		return nil, nil, err
	}
	return review, diags, nil
}

// AttachReview links an existing review from its user and its movie.
func AttachReview(review *Review) error {
	switch {
	case review == nil:
		return NewIntegrityError("make review", "review is nil")
	case review.User == nil:
		return NewIntegrityError("make review", "review requires a user")
	case review.Movie == nil:
		return NewIntegrityError("make review", "review requires a movie")
	case review.User.HasReview(review) || review.Movie.HasReview(review):
		return NewIntegrityError("make review", "review is already attached")
	}
	review.User.Reviews = append(review.User.Reviews, review)
	review.Movie.Reviews = append(review.Movie.Reviews, review)
	return nil
}
