package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserNormalizesUsername(t *testing.T) {
	u, diags := NewUser("  DBowie ", "1234567890")
	assert.Empty(t, diags)
	assert.Equal(t, "dbowie", u.Username)
	assert.Equal(t, "1234567890", u.PasswordHash)
	assert.Equal(t, "<User dbowie>", u.String())

	_, diags = NewUser("   ", "x")
	assert.Len(t, diags, 1)
}

func TestWatchMovieAccumulatesRuntime(t *testing.T) {
	u, _ := NewUser("dbowie", "pw")
	m1, _ := NewMovie("Split", 2016)
	m1.SetRuntimeMinutes(117)
	m2, _ := NewMovie("Sing", 2016)
	m2.SetRuntimeMinutes(108)

	u.WatchMovie(m1)
	u.WatchMovie(m2)
	u.WatchMovie(nil)

	assert.Len(t, u.WatchedMovies, 2)
	assert.Equal(t, 225, u.TotalWatchMinutes)
}

func TestNewReviewToleratesRating(t *testing.T) {
	m, _ := NewMovie("Split", 2016)
	u, _ := NewUser("dbowie", "pw")

	r, diags := NewReview(m, u, "fine", 7)
	assert.Empty(t, diags)
	require.NotNil(t, r.Rating)
	assert.Equal(t, 7, *r.Rating)
	assert.False(t, r.CreatedAt().IsZero())

	for _, rating := range []int{0, 11, -3} {
		r, diags := NewReview(m, u, "bad", rating)
		assert.Nil(t, r.Rating)
		assert.Len(t, diags, 1)
	}

	assert.Empty(t, m.Reviews)
	assert.Empty(t, u.Reviews)
}

func TestMakeReviewEstablishesRelationships(t *testing.T) {
	m, _ := NewMovie("Split", 2016)
	u, _ := NewUser("dbowie", "pw")

	r, diags, err := MakeReview("Loved it", u, m, 9)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.True(t, u.HasReview(r))
	assert.True(t, m.HasReview(r))
	assert.Same(t, u, r.User)
	assert.Same(t, m, r.Movie)
}

func TestMakeReviewRequiresParents(t *testing.T) {
	m, _ := NewMovie("Split", 2016)
	_, _, err := MakeReview("x", nil, m, 5)
	assert.True(t, errors.Is(err, ErrIntegrityViolation))
	assert.Empty(t, m.Reviews)
}

func TestReviewEqual(t *testing.T) {
	m, _ := NewMovie("Split", 2016)
	u, _ := NewUser("dbowie", "pw")
	r, _ := NewReview(m, u, "ok", 5)
	copied := RestoreReview(m, u, "ok", r.Rating, r.CreatedAt())
	assert.True(t, r.Equal(copied))

	other := RestoreReview(m, u, "different", r.Rating, r.CreatedAt())
	assert.False(t, r.Equal(other))
}

func TestAttachReviewKeepsCreationTime(t *testing.T) {
	m, _ := NewMovie("Split", 2016)
	u, _ := NewUser("dbowie", "pw")
	at := time.Date(2020, 2, 28, 14, 31, 26, 0, time.UTC)

	r, diags := NewReviewAt(m, u, "imported", 7, at)
	assert.Empty(t, diags)
	assert.False(t, m.HasReview(r))

	require.NoError(t, AttachReview(r))
	assert.True(t, m.HasReview(r))
	assert.True(t, u.HasReview(r))
	assert.Equal(t, at, r.CreatedAt())

	assert.ErrorIs(t, AttachReview(r), ErrIntegrityViolation)
	assert.Len(t, m.Reviews, 1)
	assert.ErrorIs(t, AttachReview(&Review{Movie: m}), ErrIntegrityViolation)
}
