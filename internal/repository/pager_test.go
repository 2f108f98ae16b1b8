package repository

import (
	"fmt"
	"testing"

	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagerMovies(t *testing.T, n int) []*models.Movie {
	t.Helper()
	movies := make([]*models.Movie, 0, n)
	for i := 0; i < n; i++ {
		movies = append(movies, newMovie(t, i+1, fmt.Sprintf("Movie %02d", i), 2000+i))
	}
	return movies
}

func TestParseFilterKey(t *testing.T) {
	key, err := ParseFilterKey("")
	require.NoError(t, err)
	assert.Equal(t, FilterTitle, key)

	key, err = ParseFilterKey(" Genres ")
	require.NoError(t, err)
	assert.Equal(t, FilterGenres, key)

	_, err = ParseFilterKey("budget")
	assert.ErrorIs(t, err, ErrUnknownFilterKey)
}

func TestPagerSplitCoversEveryMovieOnce(t *testing.T) {
	movies := pagerMovies(t, 12)
	p := NewPager(5)
	require.NoError(t, p.Split(movies, "", FilterTitle))
	require.Equal(t, 3, p.Len())

	var seen []*models.Movie
	for i := 0; i < p.Len(); i++ {
		page, err := p.Page(i)
		require.NoError(t, err)
		if i < p.Len()-1 {
			assert.Len(t, page, 5)
		}
		seen = append(seen, page...)
	}
	assert.Equal(t, movies, seen)

	last, err := p.Page(-1)
	require.NoError(t, err)
	assert.Len(t, last, 2)
}

func TestPagerSplitIsDeterministic(t *testing.T) {
	movies := pagerMovies(t, 9)
	a, b := NewPager(4), NewPager(4)
	require.NoError(t, a.Split(movies, "movie 0", FilterTitle))
	require.NoError(t, b.Split(movies, "movie 0", FilterTitle))

	pa, err := a.Page(0)
	require.NoError(t, err)
	pb, err := b.Page(0)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
	assert.Equal(t, a.Len(), b.Len())
}

func TestPagerOutOfRange(t *testing.T) {
	p := NewPager(5)
	require.NoError(t, p.Split(pagerMovies(t, 3), "", FilterTitle))

	_, err := p.Page(1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
	var rangeErr *PageOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 1, rangeErr.Index)
	assert.Equal(t, 1, rangeErr.Pages)

	_, err = p.Page(-2)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestPagerEmptyResult(t *testing.T) {
	p := NewPager(5)
	require.NoError(t, p.Split(pagerMovies(t, 3), "no such title", FilterTitle))
	assert.Equal(t, 0, p.Len())
	_, err := p.Page(0)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestPagerStaleUntilSplit(t *testing.T) {
	p := NewPager(0)
	assert.Equal(t, DefaultPageSize, p.PageSize())
	_, err := p.Page(0)
	assert.ErrorIs(t, err, ErrPagesStale)

	require.NoError(t, p.Split(pagerMovies(t, 1), "", FilterTitle))
	assert.False(t, p.Stale())
	_, err = p.Page(0)
	require.NoError(t, err)
}

func TestPagerStaleAfterIndexChanges(t *testing.T) {
	idx := NewMovieIndex()
	require.NoError(t, idx.Insert(newMovie(t, 7, "Zootopia", 2016)))

	p := NewPager(5)
	require.NoError(t, p.SplitIndex(idx, "", FilterTitle))
	page, err := p.Page(0)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, movieIDs(page))

	// a rejected insert leaves the index, and so the pages, untouched
	require.Error(t, idx.Insert(newMovie(t, 7, "Sing", 2016)))
	assert.False(t, p.Stale())

	require.NoError(t, idx.Insert(newMovie(t, 2, "Prometheus", 2012)))
	assert.True(t, p.Stale())
	_, err = p.Page(0)
	assert.ErrorIs(t, err, ErrPagesStale)

	require.NoError(t, p.SplitIndex(idx, "", FilterTitle))
	page, err = p.Page(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 7}, movieIDs(page))
}

func TestPagerFiltersByKey(t *testing.T) {
	m := newMovie(t, 1, "Guardians of the Galaxy", 2014)
	m.AddGenre(models.NewGenre("Action"))
	m.AddGenre(models.NewGenre("Adventure"))
	m.AddActor(models.NewActor("Chris Pratt"))
	m.AddActor(models.NewActor("Vin Diesel"))
	m.SetDirector(models.NewDirector("James Gunn"))
	other := newMovie(t, 2, "Sing", 2016)
	other.AddGenre(models.NewGenre("Animation"))
	movies := []*models.Movie{m, other}

	cases := []struct {
		term string
		key  FilterKey
		want int
	}{
		{"galaxy", FilterTitle, 1},
		{"actionadv", FilterGenres, 1},
		{"ANIM", FilterGenres, 1},
		{"prattvin", FilterActors, 1},
		{"gunn", FilterDirector, 1},
		{"", FilterDirector, 2},
		{"nolan", FilterDirector, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.key, tc.term), func(t *testing.T) {
			p := NewPager(5)
			require.NoError(t, p.Split(movies, tc.term, tc.key))
			if tc.want == 0 {
				assert.Equal(t, 0, p.Len())
				return
			}
			page, err := p.Page(0)
			require.NoError(t, err)
			assert.Len(t, page, tc.want)
		})
	}

	p := NewPager(5)
	assert.ErrorIs(t, p.Split(movies, "", FilterKey("rating")), ErrUnknownFilterKey)
}
