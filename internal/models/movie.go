package models

import (
	"fmt"
	"strings"
)

// MinReleaseYear is the earliest release year the catalog accepts.
const MinReleaseYear = 1900

type Movie struct {
	ID             int
	Title          string
	ReleaseYear    *int
	Description    string
	RuntimeMinutes int
	Rating         string
	Votes          string
	Revenue        string
	Metascore      string
	Genres         []Genre
	Actors         []Actor
	Director       Director
	Reviews        []*Review
	Tags           []*Tag
}

// NewMovie builds a movie from possibly messy import data. An empty title or
// a release year before 1900 is left unset and reported as a diagnostic.
func NewMovie(title string, releaseYear int) (*Movie, Diagnostics) {
	var diags Diagnostics
	m := &Movie{Title: strings.TrimSpace(title)}
	if m.Title == "" {
		diags.add("movie", "title", title, "empty title")
	}
	if releaseYear >= MinReleaseYear {
		year := releaseYear
		m.ReleaseYear = &year
	} else {
		diags.add("movie", "release_year", releaseYear, fmt.Sprintf("must be >= %d", MinReleaseYear))
	}
	return m, diags
}

// SortKey is the (title, release year) pair movies are ordered by.
type SortKey struct {
	Title       string
	ReleaseYear *int
}

func (m *Movie) SortKey() SortKey {
	return SortKey{Title: m.Title, ReleaseYear: m.ReleaseYear}
}

// Compare orders movies by title, then release year. A missing year sorts
// before any known year.
func Compare(a, b *Movie) int {
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	switch {
	case a.ReleaseYear == nil && b.ReleaseYear == nil:
		return 0
	case a.ReleaseYear == nil:
		return -1
	case b.ReleaseYear == nil:
		return 1
	case *a.ReleaseYear < *b.ReleaseYear:
		return -1
	case *a.ReleaseYear > *b.ReleaseYear:
		return 1
	}
	return 0
}

func (m *Movie) Less(other *Movie) bool { return Compare(m, other) < 0 }

// Equal reports whether both movies share the same sort key.
func (m *Movie) Equal(other *Movie) bool { return Compare(m, other) == 0 }

func (m *Movie) Year() int {
	if m.ReleaseYear == nil {
		return 0
	}
	return *m.ReleaseYear
}

func (m *Movie) Hyperlink() string {
	return fmt.Sprintf("/movies/%d", m.ID)
}

func (m *Movie) String() string {
	if m.ReleaseYear == nil {
		return fmt.Sprintf("<Movie %s, None>", m.Title)
	}
	return fmt.Sprintf("<Movie %s, %d>", m.Title, *m.ReleaseYear)
}

func (m *Movie) SetDescription(description string) {
	m.Description = strings.TrimSpace(description)
}

func (m *Movie) SetDirector(director Director) {
	m.Director = director
}

// SetRuntimeMinutes keeps the previous runtime when minutes is negative.
func (m *Movie) SetRuntimeMinutes(minutes int) *Diagnostic {
	if minutes < 0 {
		return &Diagnostic{
			Entity: "movie",
			Field:  "runtime_minutes",
			Value:  fmt.Sprint(minutes),
			Reason: "must be >= 0",
		}
	}
	m.RuntimeMinutes = minutes
	return nil
}

func (m *Movie) AddActor(actor Actor) {
	m.Actors = append(m.Actors, actor)
}

func (m *Movie) RemoveActor(actor Actor) {
	for i, a := range m.Actors {
		if a == actor {
			m.Actors = append(m.Actors[:i], m.Actors[i+1:]...)
			return
		}
	}
}

func (m *Movie) AddGenre(genre Genre) {
	m.Genres = append(m.Genres, genre)
}

func (m *Movie) RemoveGenre(genre Genre) {
	for i, g := range m.Genres {
		if g == genre {
			m.Genres = append(m.Genres[:i], m.Genres[i+1:]...)
			return
		}
	}
}

// HasReview reports whether review is linked from this movie.
func (m *Movie) HasReview(review *Review) bool {
	for _, r := range m.Reviews {
		if r == review {
			return true
		}
	}
	return false
}

func (m *Movie) HasTag(tag *Tag) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m *Movie) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

func (m *Movie) ActorNames() []string {
	names := make([]string, 0, len(m.Actors))
	for _, a := range m.Actors {
		names = append(names, a.Name)
	}
	return names
}
