package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseRepository is the relational backend. Ordered reads load the
// catalog into a MovieIndex so both backends order and page identically.
type DatabaseRepository struct {
	db       *database.Database
	timeout  time.Duration
	pageSize int
}

func NewDatabaseRepository(db *database.Database, pageSize int) *DatabaseRepository {
	return &DatabaseRepository{
		db:       db,
		timeout:  db.GetQueryTimeout(),
		pageSize: pageSize,
	}
}

var _ Repository = (*DatabaseRepository)(nil)

func (r *DatabaseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func preloadMovieReviews(db *gorm.DB) *gorm.DB {
	return db.Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("reviews.id")
	}).Preload("Reviews.User")
}

func (r *DatabaseRepository) AddUser(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&database.UserRecord{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.NewIntegrityError("add user", "username %q already exists", user.Username)
		}
		rec := database.UserRecord{Username: user.Username, PasswordHash: user.PasswordHash}
		return tx.Omit(clause.Associations).Create(&rec).Error
	})
}

func (r *DatabaseRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rec database.UserRecord
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB { return tx.Order("reviews.id") }).
		Preload("Reviews.Movie").
		Where("username = ?", models.NormalizeUsername(username)).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newHydrator().userWithReviews(&rec), nil
}

func (r *DatabaseRepository) AddMovie(ctx context.Context, movie *models.Movie) error {
	if movie == nil {
		return models.NewIntegrityError("add movie", "movie is nil")
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&database.MovieRecord{}).Where("id = ?", movie.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.NewIntegrityError("add movie", "movie id %d already exists", movie.ID)
		}
		rec := toMovieRecord(movie)
		return tx.Omit(clause.Associations).Create(&rec).Error
	})
}

func (r *DatabaseRepository) GetMovie(ctx context.Context, id int) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	var rec database.MovieRecord
	if err := preloadMovieReviews(db).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	h := newHydrator()
	m := h.movieWithReviews(&rec)
	if err := hydrateTags(db, h, []int{id}); err != nil {
		return nil, err
	}
	return m, nil
}

// hydrateTags loads every tag applied to one of movieIDs, together with all
// of that tag's links, so Movie.Tags and Tag.Movies point at each other. A nil
// movieIDs loads every tag.
func hydrateTags(db *gorm.DB, h *hydrator, movieIDs []int) error {
	tagQuery := db.Order("id")
	if movieIDs != nil {
		tagQuery = tagQuery.Where("id IN (?)",
			db.Model(&database.MovieTagRecord{}).Select("tag_id").Where("movie_id IN ?", movieIDs))
	}
	var tags []database.TagRecord
	if err := tagQuery.Find(&tags).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}

	tagIDs := make([]uint, 0, len(tags))
	for i := range tags {
		h.tag(&tags[i])
		tagIDs = append(tagIDs, tags[i].ID)
	}

	var links []database.MovieTagRecord
	if err := db.Preload("Movie").Where("tag_id IN ?", tagIDs).Order("id").Find(&links).Error; err != nil {
		return err
	}
	for i := range links {
		h.link(&links[i])
	}
	return nil
}

func (r *DatabaseRepository) GetMoviesByIDs(ctx context.Context, ids []int) ([]*models.Movie, error) {
	out := make([]*models.Movie, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	var recs []database.MovieRecord
	if err := preloadMovieReviews(db).Where("id IN ?", ids).Find(&recs).Error; err != nil {
		return nil, err
	}

	h := newHydrator()
	byID := make(map[int]*models.Movie, len(recs))
	for i := range recs {
		m := h.movieWithReviews(&recs[i])
		byID[m.ID] = m
	}
	if err := hydrateTags(db, h, ids); err != nil {
		return nil, err
	}
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// loadIndex reads the whole catalog, reviews and tags included, into a fresh
// index.
func (r *DatabaseRepository) loadIndex(ctx context.Context) (*MovieIndex, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	var recs []database.MovieRecord
	if err := preloadMovieReviews(db).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}

	h := newHydrator()
	idx := NewMovieIndex()
	for i := range recs {
		if err := idx.Insert(h.movieWithReviews(&recs[i])); err != nil {
			return nil, err
		}
	}
	if err := hydrateTags(db, h, nil); err != nil {
		return nil, err
	}
	return idx, nil
}

func (r *DatabaseRepository) GetFirstMovie(ctx context.Context) (*models.Movie, error) {
	idx, err := r.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.First(), nil
}

func (r *DatabaseRepository) GetLastMovie(ctx context.Context) (*models.Movie, error) {
	idx, err := r.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Last(), nil
}

func (r *DatabaseRepository) CountMovies(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&database.MovieRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *DatabaseRepository) GetPreviousMovieID(ctx context.Context, movie *models.Movie) (int, bool, error) {
	idx, err := r.loadIndex(ctx)
	if err != nil {
		return 0, false, err
	}
	id, ok := idx.NeighborBefore(movie)
	return id, ok, nil
}

func (r *DatabaseRepository) GetNextMovieID(ctx context.Context, movie *models.Movie) (int, bool, error) {
	idx, err := r.loadIndex(ctx)
	if err != nil {
		return 0, false, err
	}
	id, ok := idx.NeighborAfter(movie)
	return id, ok, nil
}

func (r *DatabaseRepository) GetPage(ctx context.Context, pageIndex int, searchTerm string, key FilterKey) ([]*models.Movie, error) {
	idx, err := r.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	pager := NewPager(r.pageSize)
	if err := pager.SplitIndex(idx, searchTerm, key); err != nil {
		return nil, err
	}
	return pager.Page(pageIndex)
}

func (r *DatabaseRepository) AddTag(ctx context.Context, tag *models.Tag) error {
	if tag == nil || tag.Name == "" {
		return models.NewIntegrityError("add tag", "tag name is empty")
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := database.TagRecord{Name: tag.Name}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		for _, m := range tag.Movies {
			if err := requireMovie(tx, "add tag", m.ID); err != nil {
				return err
			}
			link := database.MovieTagRecord{MovieID: m.ID, TagID: rec.ID}
			if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func requireMovie(tx *gorm.DB, op string, id int) error {
	var count int64
	if err := tx.Model(&database.MovieRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.NewIntegrityError(op, "unknown movie %d", id)
	}
	return nil
}

func (r *DatabaseRepository) GetTags(ctx context.Context) ([]*models.Tag, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	var recs []database.TagRecord
	if err := db.Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}

	h := newHydrator()
	out := make([]*models.Tag, 0, len(recs))
	for i := range recs {
		out = append(out, h.tag(&recs[i]))
	}
	if err := hydrateTags(db, h, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DatabaseRepository) AddTagAssociation(ctx context.Context, tagName string, movieID int) error {
	const op = "tag movie"
	name := strings.TrimSpace(tagName)
	if name == "" {
		return models.NewIntegrityError(op, "tag name is empty")
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireMovie(tx, op, movieID); err != nil {
			return err
		}

		var tag database.TagRecord
		err := tx.Where("name = ?", name).Order("id").First(&tag).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			tag = database.TagRecord{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		var count int64
		if err := tx.Model(&database.MovieTagRecord{}).
			Where("movie_id = ? AND tag_id = ?", movieID, tag.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.NewIntegrityError(op, "tag %q already applied to movie %d", name, movieID)
		}

		link := database.MovieTagRecord{MovieID: movieID, TagID: tag.ID}
		return tx.Omit(clause.Associations).Create(&link).Error
	})
}

func (r *DatabaseRepository) GetMovieIDsForTag(ctx context.Context, tagName string) ([]int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	var tag database.TagRecord
	if err := db.Where("name = ?", tagName).Order("id").First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []int{}, nil
		}
		return nil, err
	}

	ids := []int{}
	if err := db.Model(&database.MovieTagRecord{}).
		Where("tag_id = ?", tag.ID).
		Order("id").
		Pluck("movie_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// AddReview stores a linked review. The stored rows carry no object
// identity, so a review submitted twice is stored twice.
func (r *DatabaseRepository) AddReview(ctx context.Context, review *models.Review) error {
	const op = "add review"
	if err := validateReviewLinks(review); err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user database.UserRecord
		if err := tx.Where("username = ?", review.User.Username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewIntegrityError(op, "unknown user %q", review.User.Username)
			}
			return err
		}
		if err := requireMovie(tx, op, review.Movie.ID); err != nil {
			return err
		}
		rec := database.ReviewRecord{
			UserID:    user.ID,
			MovieID:   review.Movie.ID,
			Text:      review.Text,
			Rating:    review.Rating,
			CreatedAt: review.CreatedAt(),
		}
		return tx.Omit(clause.Associations).Create(&rec).Error
	})
}

func (r *DatabaseRepository) GetReviews(ctx context.Context) ([]*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var recs []database.ReviewRecord
	if err := r.db.WithContext(ctx).Preload("User").Preload("Movie").Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}

	h := newHydrator()
	out := make([]*models.Review, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		out = append(out, h.review(rec, h.movie(&rec.Movie), h.user(&rec.User)))
	}
	return out, nil
}
