package catalog

import (
	"testing"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []domain.ExerciseCatalogEntry {
	return []domain.ExerciseCatalogEntry{
		{ID: "barbell-back-squat", Name: "Barbell Back Squat", PrimaryMuscles: []string{"quads"}, Equipment: []string{"barbell", "rack"}},
		{ID: "push-up", Name: "Push-Up", PrimaryMuscles: []string{"chest"}},
	}
}

func TestCache(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		c := New(1)
		require.NoError(t, c.Put("user-1", sampleCatalog()))

		got, ok := c.Get("user-1")
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "barbell-back-squat", got[0].ID)
		assert.Equal(t, []string{"barbell", "rack"}, got[0].Equipment)
	})

	t.Run("miss on unknown scope", func(t *testing.T) {
		c := New(1)
		_, ok := c.Get("nobody")
		assert.False(t, ok)
	})

	t.Run("scopes are isolated", func(t *testing.T) {
		c := New(1)
		require.NoError(t, c.Put("user-1", sampleCatalog()))
		_, ok := c.Get("user-2")
		assert.False(t, ok)
	})

	t.Run("resolve prefers supplied and caches it", func(t *testing.T) {
		c := New(1)
		supplied := sampleCatalog()

		got := c.Resolve("user-1", supplied)
		assert.Len(t, got, 2)

		cached := c.Resolve("user-1", nil)
		require.Len(t, cached, 2)
		assert.Equal(t, supplied[0].ID, cached[0].ID)
	})

	t.Run("resolve with nothing cached returns supplied", func(t *testing.T) {
		c := New(1)
		got := c.Resolve("user-1", nil)
		assert.Empty(t, got)
	})
}
