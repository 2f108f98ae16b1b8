package seed

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testDataset = `
movies:
  - id: 7
    title: Zootopia
    year: 2016
    director: Byron Howard
    genres: [Animation, Adventure, " "]
    actors: [Ginnifer Goodwin, Jason Bateman]
    runtime_minutes: 108
    tags: [family, animation]
  - id: 2
    title: Prometheus
    year: 2012
    runtime_minutes: -5
    tags: [" family "]
  - id: 9
    title: ""
    year: 1850
users:
  - username: " FMercury "
    password: mvNNbc1eLA$i
  - username: ""
    password: nobody
reviews:
  - username: fmercury
    movie_id: 7
    text: Loved it
    rating: 9
    created_at: 2020-02-28T14:31:26Z
  - username: fmercury
    movie_id: 2
    text: No score given
    rating: 0
  - username: ghost
    movie_id: 7
    text: Who am I
    rating: 5
`

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func init() {
	PasswordCost = bcrypt.MinCost
}

func TestParseDataset(t *testing.T) {
	ds, err := Parse([]byte(testDataset))
	require.NoError(t, err)
	require.Len(t, ds.Movies, 3)
	assert.Equal(t, "Zootopia", ds.Movies[0].Title)
	assert.Equal(t, []string{"family", "animation"}, ds.Movies[0].Tags)
	require.Len(t, ds.Reviews, 3)
	assert.Equal(t, time.Date(2020, 2, 28, 14, 31, 26, 0, time.UTC), ds.Reviews[0].CreatedAt)
	assert.True(t, ds.Reviews[1].CreatedAt.IsZero())

	_, err = Parse([]byte("movies: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0o600))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ds.Users, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPopulate(t *testing.T) {
	ctx := context.Background()
	ds, err := Parse([]byte(testDataset))
	require.NoError(t, err)
	repo := repository.NewMemoryRepository(5)

	stats, err := Populate(ctx, repo, ds, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, &Stats{Movies: 3, Tags: 2, Users: 1, Reviews: 2, Skipped: 2}, stats)

	first, err := repo.GetFirstMovie(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, first.ID)
	assert.Nil(t, first.ReleaseYear)

	zoo, err := repo.GetMovie(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"Animation", "Adventure"}, zoo.GenreNames())
	assert.Equal(t, "Byron Howard", zoo.Director.Name)
	require.Len(t, zoo.Reviews, 1)
	assert.Equal(t, time.Date(2020, 2, 28, 14, 31, 26, 0, time.UTC), zoo.Reviews[0].CreatedAt())

	prometheus, err := repo.GetMovie(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, prometheus.RuntimeMinutes)
	require.Len(t, prometheus.Reviews, 1)
	assert.Nil(t, prometheus.Reviews[0].Rating)

	ids, err := repo.GetMovieIDsForTag(ctx, "family")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 2}, ids)

	user, err := repo.GetUser(ctx, "fmercury")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "mvNNbc1eLA$i", user.PasswordHash)
	assert.True(t, CheckPassword(user.PasswordHash, "mvNNbc1eLA$i"))
	assert.False(t, CheckPassword(user.PasswordHash, "wrong"))
	assert.Len(t, user.Reviews, 2)
}

func TestPopulateRejectsDuplicateMovieIDs(t *testing.T) {
	ds := &Dataset{Movies: []MovieEntry{
		{ID: 1, Title: "Split", Year: 2016},
		{ID: 1, Title: "Sing", Year: 2016},
	}}

	stats, err := Populate(context.Background(), repository.NewMemoryRepository(5), ds, quietLogger())
	assert.Error(t, err)
	assert.Equal(t, 1, stats.Movies)
}

func TestPopulateBundledDataset(t *testing.T) {
	ds, err := LoadFile(filepath.Join("..", "..", "data", "catalog.yaml"))
	require.NoError(t, err)

	ctx := context.Background()
	repo := repository.NewMemoryRepository(5)
	stats, err := Populate(ctx, repo, ds, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, len(ds.Movies), stats.Movies)
	assert.Equal(t, len(ds.Reviews), stats.Reviews)
	assert.Zero(t, stats.Skipped)
}
