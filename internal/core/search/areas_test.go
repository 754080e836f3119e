package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCuisineArea(t *testing.T) {
	area, ok := cuisineArea("italian")
	assert.True(t, ok)
	assert.Equal(t, "Italian", area)

	area, ok = cuisineArea(" ITALIAN ")
	assert.True(t, ok)
	assert.Equal(t, "Italian", area)

	// Whitespace inside the term is stripped before lookup.
	area, ok = cuisineArea("viet namese")
	assert.True(t, ok)
	assert.Equal(t, "Vietnamese", area)

	_, ok = cuisineArea("pizza")
	assert.False(t, ok)

	_, ok = cuisineArea("")
	assert.False(t, ok)
}
