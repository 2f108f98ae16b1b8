package repository

import (
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

// hydrator turns rows back into entities. Within one hydrator every row maps
// to a single entity, so review links point at shared movie and user values.
type hydrator struct {
	movies  map[int]*models.Movie
	users   map[uint]*models.User
	reviews map[uint]*models.Review
	tags    map[uint]*models.Tag
}

func newHydrator() *hydrator {
	return &hydrator{
		movies:  make(map[int]*models.Movie),
		users:   make(map[uint]*models.User),
		reviews: make(map[uint]*models.Review),
		tags:    make(map[uint]*models.Tag),
	}
}

func (h *hydrator) movie(rec *database.MovieRecord) *models.Movie {
	if m, ok := h.movies[rec.ID]; ok {
		return m
	}
	m := &models.Movie{
		ID:             rec.ID,
		Title:          rec.Title,
		ReleaseYear:    rec.ReleaseYear,
		Description:    rec.Description,
		RuntimeMinutes: rec.RuntimeMinutes,
		Rating:         rec.Rating,
		Votes:          rec.Votes,
		Revenue:        rec.Revenue,
		Metascore:      rec.Metascore,
		Director:       models.NewDirector(rec.Director),
	}
	for _, name := range rec.Genres {
		m.AddGenre(models.NewGenre(name))
	}
	for _, name := range rec.Actors {
		m.AddActor(models.NewActor(name))
	}
	h.movies[rec.ID] = m
	return m
}

func (h *hydrator) user(rec *database.UserRecord) *models.User {
	if u, ok := h.users[rec.ID]; ok {
		return u
	}
	u := &models.User{Username: rec.Username, PasswordHash: rec.PasswordHash}
	h.users[rec.ID] = u
	return u
}

// review restores a review and links it from both its movie and its user.
func (h *hydrator) review(rec *database.ReviewRecord, movie *models.Movie, user *models.User) *models.Review {
	if r, ok := h.reviews[rec.ID]; ok {
		return r
	}
	r := models.RestoreReview(movie, user, rec.Text, rec.Rating, rec.CreatedAt)
	movie.Reviews = append(movie.Reviews, r)
	user.Reviews = append(user.Reviews, r)
	h.reviews[rec.ID] = r
	return r
}

func (h *hydrator) tag(rec *database.TagRecord) *models.Tag {
	if t, ok := h.tags[rec.ID]; ok {
		return t
	}
	t := models.NewTag(rec.Name)
	h.tags[rec.ID] = t
	return t
}

// link applies a stored tag to its movie on both sides. rec.Movie must be
// preloaded and the tag hydrated beforehand.
func (h *hydrator) link(rec *database.MovieTagRecord) {
	t, ok := h.tags[rec.TagID]
	if !ok {
		return
	}
	m := h.movie(&rec.Movie)
	if t.IsAppliedTo(m) {
		return
	}
	t.Movies = append(t.Movies, m)
	m.Tags = append(m.Tags, t)
}

// movieWithReviews expects rec.Reviews preloaded with their users.
func (h *hydrator) movieWithReviews(rec *database.MovieRecord) *models.Movie {
	m := h.movie(rec)
	for i := range rec.Reviews {
		rr := &rec.Reviews[i]
		h.review(rr, m, h.user(&rr.User))
	}
	return m
}

// userWithReviews expects rec.Reviews preloaded with their movies.
func (h *hydrator) userWithReviews(rec *database.UserRecord) *models.User {
	u := h.user(rec)
	for i := range rec.Reviews {
		rr := &rec.Reviews[i]
		h.review(rr, h.movie(&rr.Movie), u)
	}
	return u
}

func toMovieRecord(m *models.Movie) database.MovieRecord {
	return database.MovieRecord{
		ID:             m.ID,
		Title:          m.Title,
		ReleaseYear:    m.ReleaseYear,
		Description:    m.Description,
		RuntimeMinutes: m.RuntimeMinutes,
		Rating:         m.Rating,
		Votes:          m.Votes,
		Revenue:        m.Revenue,
		Metascore:      m.Metascore,
		Director:       m.Director.Name,
		Genres:         m.GenreNames(),
		Actors:         m.ActorNames(),
	}
}
