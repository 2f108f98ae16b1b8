package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovie(t *testing.T) {
	m, diags := NewMovie("  Guardians of the Galaxy ", 2014)
	assert.Empty(t, diags)
	assert.Equal(t, "Guardians of the Galaxy", m.Title)
	require.NotNil(t, m.ReleaseYear)
	assert.Equal(t, 2014, *m.ReleaseYear)
	assert.Equal(t, 0, m.ID)
	assert.Equal(t, "<Movie Guardians of the Galaxy, 2014>", m.String())
}

func TestNewMovieToleratesBadFields(t *testing.T) {
	m, diags := NewMovie("", 1899)
	assert.Equal(t, "", m.Title)
	assert.Nil(t, m.ReleaseYear)
	require.Len(t, diags, 2)
	assert.Equal(t, "title", diags[0].Field)
	assert.Equal(t, "release_year", diags[1].Field)
	assert.Error(t, diags.Err())
}

func TestSetRuntimeMinutes(t *testing.T) {
	m, _ := NewMovie("Split", 2016)
	assert.Nil(t, m.SetRuntimeMinutes(117))
	assert.Equal(t, 117, m.RuntimeMinutes)

	d := m.SetRuntimeMinutes(-1)
	require.NotNil(t, d)
	assert.Equal(t, "runtime_minutes", d.Field)
	assert.Equal(t, 117, m.RuntimeMinutes)
}

func TestCompareOrdersByTitleThenYear(t *testing.T) {
	a, _ := NewMovie("Alien", 1979)
	b, _ := NewMovie("Alien", 1986)
	c, _ := NewMovie("Zootopia", 2016)
	noYear, _ := NewMovie("Alien", 0)

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, noYear.Less(a))
	assert.False(t, a.Less(a))

	movies := []*Movie{c, b, a, noYear}
	sort.Slice(movies, func(i, j int) bool { return movies[i].Less(movies[j]) })
	assert.Equal(t, []*Movie{noYear, a, b, c}, movies)
}

func TestMovieEqualityUsesSortKey(t *testing.T) {
	a, _ := NewMovie("Prometheus", 2012)
	b, _ := NewMovie("Prometheus", 2012)
	b.ID = 99
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.SortKey().Title, b.SortKey().Title)
}

func TestActorsAndGenres(t *testing.T) {
	m, _ := NewMovie("Prometheus", 2012)
	m.AddActor(NewActor(" Noomi Rapace "))
	m.AddActor(NewActor("Michael Fassbender"))
	m.AddGenre(NewGenre("Sci-Fi"))
	m.AddGenre(NewGenre("Horror"))

	assert.Equal(t, []string{"Noomi Rapace", "Michael Fassbender"}, m.ActorNames())

	m.RemoveActor(NewActor("Noomi Rapace"))
	m.RemoveActor(NewActor("Nobody"))
	assert.Equal(t, []string{"Michael Fassbender"}, m.ActorNames())

	m.RemoveGenre(NewGenre("Sci-Fi"))
	assert.Equal(t, []string{"Horror"}, m.GenreNames())
}

func TestPersonNames(t *testing.T) {
	assert.False(t, NewDirector("").IsSet())
	assert.False(t, NewActor("   ").IsSet())
	assert.True(t, NewGenre("Drama").IsSet())
	assert.Equal(t, NewDirector("Ridley Scott"), NewDirector(" Ridley Scott"))
	assert.True(t, NewGenre("Action").Less(NewGenre("Drama")))

	seen := map[Actor]bool{NewActor("Chris Pratt"): true}
	assert.True(t, seen[NewActor("Chris Pratt ")])
}
