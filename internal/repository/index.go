package repository

import (
	"sort"

	"movie-catalog/internal/models"
)

// MovieIndex keeps movies sorted by (title, release year) alongside an id
// lookup table. Both always hold the same set of movies.
type MovieIndex struct {
	ordered []*models.Movie
	byID    map[int]*models.Movie
	version uint64
}

func NewMovieIndex() *MovieIndex {
	return &MovieIndex{byID: make(map[int]*models.Movie)}
}

// Insert places movie at the leftmost position among equal sort keys.
// A movie whose id is already indexed is rejected.
func (idx *MovieIndex) Insert(movie *models.Movie) error {
	if movie == nil {
		return models.NewIntegrityError("add movie", "movie is nil")
	}
	if _, exists := idx.byID[movie.ID]; exists {
		return models.NewIntegrityError("add movie", "movie id %d already exists", movie.ID)
	}
	pos := idx.search(movie)
	idx.ordered = append(idx.ordered, nil)
	copy(idx.ordered[pos+1:], idx.ordered[pos:])
	idx.ordered[pos] = movie
	idx.byID[movie.ID] = movie
	idx.version++
	return nil
}

// search returns the first position whose movie does not sort before movie.
func (idx *MovieIndex) search(movie *models.Movie) int {
	return sort.Search(len(idx.ordered), func(i int) bool {
		return models.Compare(idx.ordered[i], movie) >= 0
	})
}

func (idx *MovieIndex) Lookup(id int) (*models.Movie, bool) {
	m, ok := idx.byID[id]
	return m, ok
}

// IndexOf finds the sort key by binary search, then confirms the id among the
// run of movies sharing that key.
func (idx *MovieIndex) IndexOf(movie *models.Movie) (int, bool) {
	if movie == nil {
		return 0, false
	}
	for i := idx.search(movie); i < len(idx.ordered); i++ {
		stored := idx.ordered[i]
		if !stored.Equal(movie) {
			break
		}
		if stored.ID == movie.ID {
			return i, true
		}
	}
	return 0, false
}

// NeighborBefore returns the id of the closest earlier movie with a smaller
// sort key.
func (idx *MovieIndex) NeighborBefore(movie *models.Movie) (int, bool) {
	pos, ok := idx.IndexOf(movie)
	if !ok {
		return 0, false
	}
	for i := pos - 1; i >= 0; i-- {
		if idx.ordered[i].Less(movie) {
			return idx.ordered[i].ID, true
		}
	}
	return 0, false
}

// NeighborAfter returns the id of the closest later movie with a greater sort
// key.
func (idx *MovieIndex) NeighborAfter(movie *models.Movie) (int, bool) {
	pos, ok := idx.IndexOf(movie)
	if !ok {
		return 0, false
	}
	for i := pos + 1; i < len(idx.ordered); i++ {
		if movie.Less(idx.ordered[i]) {
			return idx.ordered[i].ID, true
		}
	}
	return 0, false
}

func (idx *MovieIndex) Len() int { return len(idx.ordered) }

func (idx *MovieIndex) First() *models.Movie {
	if len(idx.ordered) == 0 {
		return nil
	}
	return idx.ordered[0]
}

func (idx *MovieIndex) Last() *models.Movie {
	if len(idx.ordered) == 0 {
		return nil
	}
	return idx.ordered[len(idx.ordered)-1]
}

// All returns the movies in sort order. The slice is a copy.
func (idx *MovieIndex) All() []*models.Movie {
	out := make([]*models.Movie, len(idx.ordered))
	copy(out, idx.ordered)
	return out
}

// Version changes every time the index is mutated.
func (idx *MovieIndex) Version() uint64 { return idx.version }
