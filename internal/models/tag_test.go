package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeTagAssociation(t *testing.T) {
	m, _ := NewMovie("Zootopia", 2016)
	m.ID = 7
	tag := NewTag("Animation")

	require.NoError(t, MakeTagAssociation(m, tag))
	assert.True(t, tag.IsAppliedTo(m))
	assert.True(t, m.HasTag(tag))
	assert.Equal(t, []int{7}, tag.MovieIDs())
}

func TestMakeTagAssociationTwiceIsIntegrityViolation(t *testing.T) {
	m, _ := NewMovie("Zootopia", 2016)
	m.ID = 7
	tag := NewTag("Animation")
	require.NoError(t, MakeTagAssociation(m, tag))

	err := MakeTagAssociation(m, tag)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIntegrityViolation))

	var ie *IntegrityError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "tag movie", ie.Op)

	assert.Len(t, m.Tags, 1)
	assert.Len(t, tag.Movies, 1)
}
