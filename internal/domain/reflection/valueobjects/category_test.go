package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	for _, s := range []string{"blog", "journal", "artwork"} {
		c, err := NewCategory(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
	}

	for _, s := range []string{"", "Blog", "poetry"} {
		_, err := NewCategory(s)
		assert.Error(t, err, s)
	}
}

func TestAllCategories(t *testing.T) {
	all := AllCategories()
	assert.Equal(t, []Category{CategoryBlog, CategoryJournal, CategoryArtwork}, all)
	for _, c := range all {
		assert.True(t, c.IsValid())
	}
}
