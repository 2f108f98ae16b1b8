package repository

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseRepositoryRoundTripsMovieFields(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t, DefaultPageSize)

	m := newMovie(t, 1, "Guardians of the Galaxy", 2014)
	m.SetDescription("A group of intergalactic criminals.")
	m.SetDirector(models.NewDirector("James Gunn"))
	m.AddGenre(models.NewGenre("Action"))
	m.AddGenre(models.NewGenre("Sci-Fi"))
	m.AddActor(models.NewActor("Chris Pratt"))
	m.AddActor(models.NewActor("Zoe Saldana"))
	require.Nil(t, m.SetRuntimeMinutes(121))
	m.Rating = "8.1"
	m.Votes = "757074"
	m.Revenue = "333.13"
	m.Metascore = "76"
	require.NoError(t, repo.AddMovie(ctx, m))

	got, err := repo.GetMovie(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.Title, got.Title)
	assert.Equal(t, 2014, got.Year())
	assert.Equal(t, m.Description, got.Description)
	assert.Equal(t, m.Director, got.Director)
	assert.Equal(t, m.Genres, got.Genres)
	assert.Equal(t, m.Actors, got.Actors)
	assert.Equal(t, 121, got.RuntimeMinutes)
	assert.Equal(t, "8.1", got.Rating)
	assert.Equal(t, "757074", got.Votes)
	assert.Equal(t, "333.13", got.Revenue)
	assert.Equal(t, "76", got.Metascore)
}

func TestDatabaseRepositoryKeepsMissingYear(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t, DefaultPageSize)
	addMovie(t, repo, 1, "Alien", 1979)
	addMovie(t, repo, 2, "Alien", 0)

	first, err := repo.GetFirstMovie(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.ID)
	assert.Nil(t, first.ReleaseYear)
}

func TestDatabaseRepositoryReviewKeepsCreationTime(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t, DefaultPageSize)
	addMovie(t, repo, 7, "Zootopia", 2016)
	stored, _ := models.NewUser("shaunb", "hash")
	require.NoError(t, repo.AddUser(ctx, stored))

	user, err := repo.GetUser(ctx, "shaunb")
	require.NoError(t, err)
	movie, err := repo.GetMovie(ctx, 7)
	require.NoError(t, err)

	review, _, err := models.MakeReview("Loved it", user, movie, 0)
	require.NoError(t, err)
	require.NoError(t, repo.AddReview(ctx, review))

	reviews, err := repo.GetReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Nil(t, reviews[0].Rating)
	assert.WithinDuration(t, review.CreatedAt(), reviews[0].CreatedAt(), time.Second)
}

func TestDatabaseRepositoryHonoursDeadline(t *testing.T) {
	repo := newSQLiteRepository(t, DefaultPageSize)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.CountMovies(ctx)
	assert.Error(t, err)
}

func TestDatabaseRepositoryResolvesReviewUserByUsername(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t, DefaultPageSize)
	addMovie(t, repo, 7, "Zootopia", 2016)
	stored, _ := models.NewUser("shaunb", "hash")
	require.NoError(t, repo.AddUser(ctx, stored))
	movie, err := repo.GetMovie(ctx, 7)
	require.NoError(t, err)

	// rows carry no object identity, so a detached user with a stored
	// username is accepted
	copied, _ := models.NewUser("shaunb", "hash")
	review, _, err := models.MakeReview("From a copy", copied, movie, 6)
	require.NoError(t, err)
	require.NoError(t, repo.AddReview(ctx, review))

	user, err := repo.GetUser(ctx, "shaunb")
	require.NoError(t, err)
	require.Len(t, user.Reviews, 1)
	assert.Equal(t, "From a copy", user.Reviews[0].Text)
}
