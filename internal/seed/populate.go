package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for seeded users.
var PasswordCost = bcrypt.DefaultCost

// Stats counts what Populate stored.
type Stats struct {
	Movies  int
	Tags    int
	Users   int
	Reviews int
	Skipped int
}

// Populate loads ds into repo: movies and their tags first, then users, then
// reviews. Field problems are logged and the entity is stored with defaults;
// rejected relationships abort the load.
func Populate(ctx context.Context, repo repository.Repository, ds *Dataset, logger *logrus.Logger) (*Stats, error) {
	stats := &Stats{}

	movies, err := loadMovies(ctx, repo, ds.Movies, logger, stats)
	if err != nil {
		return stats, err
	}
	if err := loadTags(ctx, repo, ds.Movies, movies, logger, stats); err != nil {
		return stats, err
	}
	if err := loadUsers(ctx, repo, ds.Users, logger, stats); err != nil {
		return stats, err
	}
	if err := loadReviews(ctx, repo, ds.Reviews, logger, stats); err != nil {
		return stats, err
	}

	logger.WithFields(logrus.Fields{
		"movies":  stats.Movies,
		"tags":    stats.Tags,
		"users":   stats.Users,
		"reviews": stats.Reviews,
		"skipped": stats.Skipped,
	}).Info("Catalog populated")
	return stats, nil
}

func logDiagnostics(logger *logrus.Logger, diags models.Diagnostics) {
	for _, d := range diags {
		logger.WithFields(logrus.Fields{
			"entity": d.Entity,
			"field":  d.Field,
			"value":  d.Value,
		}).Warn(d.Reason)
	}
}

func loadMovies(ctx context.Context, repo repository.Repository, entries []MovieEntry, logger *logrus.Logger, stats *Stats) (map[int]*models.Movie, error) {
	movies := make(map[int]*models.Movie, len(entries))
	for _, e := range entries {
		movie, diags := models.NewMovie(e.Title, e.Year)
		movie.ID = e.ID
		movie.SetDescription(e.Description)
		movie.SetDirector(models.NewDirector(e.Director))
		for _, name := range e.Genres {
			if g := models.NewGenre(name); g.IsSet() {
				movie.AddGenre(g)
			}
		}
		for _, name := range e.Actors {
			if a := models.NewActor(name); a.IsSet() {
				movie.AddActor(a)
			}
		}
		if d := movie.SetRuntimeMinutes(e.RuntimeMinutes); d != nil {
			diags = append(diags, *d)
		}
		movie.Rating = e.Rating
		movie.Votes = e.Votes
		movie.Revenue = e.Revenue
		movie.Metascore = e.Metascore
		logDiagnostics(logger, diags)

		if err := repo.AddMovie(ctx, movie); err != nil {
			return nil, fmt.Errorf("failed to add movie %d: %w", e.ID, err)
		}
		movies[movie.ID] = movie
		stats.Movies++
	}
	return movies, nil
}

// loadTags groups movies by tag name, keeping first-seen order for both.
func loadTags(ctx context.Context, repo repository.Repository, entries []MovieEntry, movies map[int]*models.Movie, logger *logrus.Logger, stats *Stats) error {
	var names []string
	tags := make(map[string]*models.Tag)
	for _, e := range entries {
		for _, raw := range e.Tags {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			tag, ok := tags[name]
			if !ok {
				tag = models.NewTag(name)
				tags[name] = tag
				names = append(names, name)
			}
			if err := models.MakeTagAssociation(movies[e.ID], tag); err != nil {
				logger.WithError(err).WithField("movie_id", e.ID).Warn("Skipping tag")
				stats.Skipped++
			}
		}
	}

	for _, name := range names {
		if err := repo.AddTag(ctx, tags[name]); err != nil {
			return fmt.Errorf("failed to add tag %q: %w", name, err)
		}
		stats.Tags++
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func loadUsers(ctx context.Context, repo repository.Repository, entries []UserEntry, logger *logrus.Logger, stats *Stats) error {
	for _, e := range entries {
		hash, err := HashPassword(e.Password)
		if err != nil {
			return err
		}
		user, diags := models.NewUser(e.Username, hash)
		logDiagnostics(logger, diags)
		if user.Username == "" {
			stats.Skipped++
			continue
		}
		if err := repo.AddUser(ctx, user); err != nil {
			return fmt.Errorf("failed to add user %q: %w", user.Username, err)
		}
		stats.Users++
	}
	return nil
}

func loadReviews(ctx context.Context, repo repository.Repository, entries []ReviewEntry, logger *logrus.Logger, stats *Stats) error {
	for _, e := range entries {
		fields := logrus.Fields{"username": e.Username, "movie_id": e.MovieID}

		user, err := repo.GetUser(ctx, e.Username)
		if err != nil {
			return err
		}
		movie, err := repo.GetMovie(ctx, e.MovieID)
		if err != nil {
			return err
		}
		if user == nil || movie == nil {
			logger.WithFields(fields).Warn("Skipping review with unknown user or movie")
			stats.Skipped++
			continue
		}

		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		review, diags := models.NewReviewAt(movie, user, e.Text, e.Rating, createdAt.UTC())
		logDiagnostics(logger, diags)
		if err := models.AttachReview(review); err != nil {
			return err
		}
		if err := repo.AddReview(ctx, review); err != nil {
			return fmt.Errorf("failed to add review: %w", err)
		}
		stats.Reviews++
	}
	return nil
}
