package repository

import (
	"fmt"
	"strings"

	"movie-catalog/internal/models"
)

const DefaultPageSize = 5

// FilterKey selects which movie field a search term is matched against.
type FilterKey string

const (
	FilterTitle    FilterKey = "title"
	FilterGenres   FilterKey = "genres"
	FilterActors   FilterKey = "actors"
	FilterDirector FilterKey = "director"
)

var projections = map[FilterKey]func(*models.Movie) string{
	FilterTitle:    projectTitle,
	FilterGenres:   projectGenres,
	FilterActors:   projectActors,
	FilterDirector: projectDirector,
}

func projectTitle(m *models.Movie) string { return m.Title }

func projectGenres(m *models.Movie) string { return strings.Join(m.GenreNames(), "") }

func projectActors(m *models.Movie) string { return strings.Join(m.ActorNames(), "") }

func projectDirector(m *models.Movie) string { return m.Director.Name }

// ParseFilterKey maps user input to a FilterKey. Empty input selects title.
func ParseFilterKey(s string) (FilterKey, error) {
	if s == "" {
		return FilterTitle, nil
	}
	key := FilterKey(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := projections[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilterKey, s)
	}
	return key, nil
}

func (k FilterKey) project(m *models.Movie) string {
	return projections[k](m)
}

// Pager splits an ordered movie sequence into fixed-size pages after
// filtering it. Pages are rebuilt in full on every Split.
type Pager struct {
	pageSize int
	pages    [][]*models.Movie
	stale    bool

	// set by SplitIndex; pages go stale once the index version moves on
	source  *MovieIndex
	version uint64
}

func NewPager(pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize, stale: true}
}

func (p *Pager) PageSize() int { return p.pageSize }

// Split keeps movies whose projected field contains term, ignoring case, and
// chunks them in order.
func (p *Pager) Split(movies []*models.Movie, term string, key FilterKey) error {
	if _, ok := projections[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFilterKey, string(key))
	}
	needle := strings.ToLower(term)
	filtered := make([]*models.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(key.project(m)), needle) {
			filtered = append(filtered, m)
		}
	}

	pages := make([][]*models.Movie, 0, (len(filtered)+p.pageSize-1)/p.pageSize)
	for start := 0; start < len(filtered); start += p.pageSize {
		end := start + p.pageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		pages = append(pages, filtered[start:end])
	}
	p.pages = pages
	p.stale = false
	p.source = nil
	return nil
}

// SplitIndex splits the movies of idx and ties the pages to its current
// version. Any later mutation of idx makes Page fail with ErrPagesStale.
func (p *Pager) SplitIndex(idx *MovieIndex, term string, key FilterKey) error {
	if err := p.Split(idx.All(), term, key); err != nil {
		return err
	}
	p.source = idx
	p.version = idx.Version()
	return nil
}

// Stale reports whether the pages must be split again before use.
func (p *Pager) Stale() bool {
	return p.stale || (p.source != nil && p.source.Version() != p.version)
}

func (p *Pager) Len() int { return len(p.pages) }

// Page returns the page at index. Negative indices count from the end.
func (p *Pager) Page(index int) ([]*models.Movie, error) {
	if p.Stale() {
		return nil, ErrPagesStale
	}
	i := index
	if i < 0 {
		i += len(p.pages)
	}
	if i < 0 || i >= len(p.pages) {
		return nil, &PageOutOfRangeError{Index: index, Pages: len(p.pages)}
	}
	out := make([]*models.Movie, len(p.pages[i]))
	copy(out, p.pages[i])
	return out, nil
}
