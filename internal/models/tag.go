package models

import "strings"

type Tag struct {
	Name   string
	Movies []*Movie
}

func NewTag(name string) *Tag {
	return &Tag{Name: strings.TrimSpace(name)}
}

// IsAppliedTo matches movies by id so hydrated copies of a stored movie count.
func (t *Tag) IsAppliedTo(movie *Movie) bool {
	for _, m := range t.Movies {
		if m == movie || m.ID == movie.ID {
			return true
		}
	}
	return false
}

func (t *Tag) MovieIDs() []int {
	ids := make([]int, 0, len(t.Movies))
	for _, m := range t.Movies {
		ids = append(ids, m.ID)
	}
	return ids
}

// MakeTagAssociation applies tag to movie on both sides. Applying the same tag
// twice is an integrity violation and leaves both sides untouched.
func MakeTagAssociation(movie *Movie, tag *Tag) error {
	if movie == nil || tag == nil {
		return NewIntegrityError("tag movie", "movie and tag are required")
	}
	if tag.IsAppliedTo(movie) {
		return NewIntegrityError("tag movie", "tag %q already applied to movie %q", tag.Name, movie.Title)
	}
	movie.Tags = append(movie.Tags, tag)
	tag.Movies = append(tag.Movies, movie)
	return nil
}
