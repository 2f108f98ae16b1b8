package repository

import (
	"context"
	"testing"

	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryPagesFollowNewMovies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(1)
	addMovie(t, repo, 7, "Zootopia", 2016)

	page, err := repo.GetPage(ctx, 0, "", FilterTitle)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, movieIDs(page))

	addMovie(t, repo, 2, "Prometheus", 2012)
	page, err = repo.GetPage(ctx, 0, "", FilterTitle)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, movieIDs(page))
}

func TestMemoryRepositoryStaleAfterAddMovie(t *testing.T) {
	repo := NewMemoryRepository(5)
	addMovie(t, repo, 1, "Split", 2016)
	require.NoError(t, repo.SplitMovies("", FilterTitle))
	_, err := repo.pager.Page(0)
	require.NoError(t, err)

	addMovie(t, repo, 2, "Sing", 2016)
	_, err = repo.pager.Page(0)
	assert.ErrorIs(t, err, ErrPagesStale)
}

func TestMemoryRepositoryRejectsReviewStoredTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(5)
	movie := addMovie(t, repo, 7, "Zootopia", 2016)
	user, _ := models.NewUser("shaunb", "hash")
	require.NoError(t, repo.AddUser(ctx, user))

	review, _, err := models.MakeReview("again", user, movie, 7)
	require.NoError(t, err)
	require.NoError(t, repo.AddReview(ctx, review))
	assert.ErrorIs(t, repo.AddReview(ctx, review), models.ErrIntegrityViolation)
}

func TestMemoryRepositoryRejectsReviewOnCopiedUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(5)
	movie := addMovie(t, repo, 7, "Zootopia", 2016)
	stored, _ := models.NewUser("shaunb", "hash")
	require.NoError(t, repo.AddUser(ctx, stored))

	copied, _ := models.NewUser("shaunb", "hash")
	review, _, err := models.MakeReview("from a copy", copied, movie, 7)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.AddReview(ctx, review), models.ErrIntegrityViolation)
}

func TestMemoryRepositoryTagsAreShared(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(5)
	movie := addMovie(t, repo, 7, "Zootopia", 2016)

	require.NoError(t, repo.AddTagAssociation(ctx, " Animation ", 7))
	assert.ErrorIs(t, repo.AddTagAssociation(ctx, "Animation", 7), models.ErrIntegrityViolation)

	require.Len(t, movie.Tags, 1)
	assert.Equal(t, "Animation", movie.Tags[0].Name)
	assert.Same(t, movie, movie.Tags[0].Movies[0])
}
