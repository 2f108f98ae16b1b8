package models

import "strings"

type User struct {
	Username          string
	PasswordHash      string
	WatchedMovies     []*Movie
	Reviews           []*Review
	TotalWatchMinutes int
}

// NormalizeUsername is the canonical form usernames are stored and looked up by.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NewUser stores passwordHash as an opaque credential; hashing happens outside
// the catalog.
func NewUser(username, passwordHash string) (*User, Diagnostics) {
	var diags Diagnostics
	u := &User{
		Username:     NormalizeUsername(username),
		PasswordHash: passwordHash,
	}
	if u.Username == "" {
		diags.add("user", "username", username, "empty username")
	}
	return u, diags
}

func (u *User) Equal(other *User) bool { return u.Username == other.Username }

func (u *User) Less(other *User) bool { return u.Username < other.Username }

func (u *User) String() string { return "<User " + u.Username + ">" }

// WatchMovie records a viewing and adds its runtime to the watch total.
func (u *User) WatchMovie(movie *Movie) {
	if movie == nil {
		return
	}
	u.WatchedMovies = append(u.WatchedMovies, movie)
	u.TotalWatchMinutes += movie.RuntimeMinutes
}

func (u *User) HasReview(review *Review) bool {
	for _, r := range u.Reviews {
		if r == review {
			return true
		}
	}
	return false
}
