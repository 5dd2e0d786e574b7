package reflection

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/inkfolio/inkfolio/internal/domain/reflection/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  string
	}{
		{"empty body floors at one", 0, "1 min read"},
		{"fifty words", 50, "1 min read"},
		{"just under one and a half", 299, "1 min read"},
		{"one and a half rounds up", 300, "2 min read"},
		{"six hundred words", 600, "3 min read"},
		{"long read", 2000, "10 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReadTime(words(tt.words)))
		})
	}
}

func TestWordCount_UnicodeWhitespace(t *testing.T) {
	assert.Equal(t, 3, WordCount("one\ttwo\n\nthree"))
	assert.Equal(t, 2, WordCount("  café naïve "))
	assert.Equal(t, 0, WordCount(" \n\t "))
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" yoga ", "", "breath", "yoga", "  ", "breath", "stillness"})
	assert.Equal(t, []string{"yoga", "breath", "stillness"}, got)
	assert.Empty(t, NormalizeTags(nil))
}

func newTestReflection(t *testing.T, body string, now time.Time) *Reflection {
	t.Helper()
	r, err := NewReflection("On Stillness", "A short note", body, vo.CategoryJournal,
		[]string{"yoga"}, true, nil, now)
	require.NoError(t, err)
	return r
}

func TestNewReflection(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("derives fields", func(t *testing.T) {
		r := newTestReflection(t, words(600), now)

		assert.NotEmpty(t, r.ID())
		assert.Equal(t, "3 min read", r.ReadTime())
		assert.Equal(t, now, r.Date())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, now, r.UpdatedAt())
		assert.True(t, r.IsPublished())
	})

	t.Run("explicit date wins", func(t *testing.T) {
		date := time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC)
		r, err := NewReflection("t", "e", "c", vo.CategoryBlog, nil, false, &date, now)
		require.NoError(t, err)
		assert.Equal(t, date, r.Date())
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := newTestReflection(t, "body", now)
		b := newTestReflection(t, "body", now)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	invalid := []struct {
		name     string
		title    string
		excerpt  string
		content  string
		category vo.Category
	}{
		{"empty title", "", "e", "c", vo.CategoryBlog},
		{"blank title", "   ", "e", "c", vo.CategoryBlog},
		{"long title", strings.Repeat("a", MaxTitleLength+1), "e", "c", vo.CategoryBlog},
		{"empty excerpt", "t", "", "c", vo.CategoryBlog},
		{"long excerpt", "t", strings.Repeat("a", MaxExcerptLength+1), "c", vo.CategoryBlog},
		{"empty content", "t", "e", "", vo.CategoryBlog},
		{"bad category", "t", "e", "c", vo.Category("poetry")},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReflection(tt.title, tt.excerpt, tt.content, tt.category, nil, true, nil, now)
			assert.Error(t, err)
		})
	}
}

func TestReflection_Apply(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	t.Run("tags only leaves title and body", func(t *testing.T) {
		r := newTestReflection(t, words(50), created)
		tags := []string{"breath", "practice"}

		require.NoError(t, r.Apply(Patch{Tags: &tags}, later))

		assert.Equal(t, "On Stillness", r.Title())
		assert.Equal(t, words(50), r.Content())
		assert.Equal(t, "1 min read", r.ReadTime())
		assert.Equal(t, tags, r.Tags())
		assert.Equal(t, later, r.UpdatedAt())
		assert.Equal(t, created, r.CreatedAt())
	})

	t.Run("body change recomputes read time", func(t *testing.T) {
		r := newTestReflection(t, words(50), created)
		body := words(600)

		require.NoError(t, r.Apply(Patch{Content: &body}, later))
		assert.Equal(t, "3 min read", r.ReadTime())
	})

	t.Run("unpublish", func(t *testing.T) {
		r := newTestReflection(t, "body", created)
		published := false

		require.NoError(t, r.Apply(Patch{Published: &published}, later))
		assert.False(t, r.IsPublished())
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		r := newTestReflection(t, "body", created)
		assert.Error(t, r.Apply(Patch{}, later))
		assert.Equal(t, created, r.UpdatedAt())
	})

	t.Run("invalid field leaves entity untouched", func(t *testing.T) {
		r := newTestReflection(t, "body", created)
		title := "New title"
		empty := ""

		err := r.Apply(Patch{Title: &title, Content: &empty}, later)
		assert.Error(t, err)
		assert.Equal(t, "On Stillness", r.Title())
		assert.Equal(t, created, r.UpdatedAt())
	})

	t.Run("updated_at never moves backwards", func(t *testing.T) {
		r := newTestReflection(t, "body", created)
		title := "Rewound"

		require.NoError(t, r.Apply(Patch{Title: &title}, created.Add(-time.Minute)))
		assert.Equal(t, created.Add(biztime.Resolution), r.UpdatedAt())
	})

	t.Run("updated_at advances within one clock tick", func(t *testing.T) {
		r := newTestReflection(t, "body", created)
		first, second := "First", "Second"

		require.NoError(t, r.Apply(Patch{Title: &first}, created))
		afterFirst := r.UpdatedAt()
		require.NoError(t, r.Apply(Patch{Title: &second}, created))

		assert.True(t, afterFirst.After(created))
		assert.True(t, r.UpdatedAt().After(afterFirst))
	})
}

func TestReflection_TagsIsACopy(t *testing.T) {
	r := newTestReflection(t, "body", time.Now())
	tags := r.Tags()
	tags[0] = "mutated"
	assert.Equal(t, []string{"yoga"}, r.Tags())
}

func TestReconstructReflection_RecomputesReadTime(t *testing.T) {
	now := time.Now().UTC()
	r, err := ReconstructReflection("id-1", "t", "e", words(600), vo.CategoryArtwork,
		[]string{"ink"}, false, now, now, now)
	require.NoError(t, err)
	assert.Equal(t, "3 min read", r.ReadTime())

	_, err = ReconstructReflection("", "t", "e", "c", vo.CategoryArtwork, nil, false, now, now, now)
	assert.Error(t, err)
}
