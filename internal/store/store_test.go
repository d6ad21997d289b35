package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

func TestNewUserStore(t *testing.T) {
	t.Run("missing file starts empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.json")

		s, err := NewUserStore(path)

		require.NoError(t, err)
		_, ok := s.Get("user1")
		assert.False(t, ok)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

		_, err := NewUserStore(path)
		assert.Error(t, err)
	})
}

func TestUserStorePutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	s, err := NewUserStore(path)
	require.NoError(t, err)

	record := models.NewUserRecord()
	record.Profile = models.Profile{
		Name:                "Test User",
		Weight:              160,
		Height:              70,
		Age:                 30,
		BiologicalSex:       models.SexMale,
		DietaryRestrictions: []string{"Vegetarian"},
		RateOfProgress:      models.RateMaintain,
		ActivityLevel:       models.ActivitySedentary,
		ProteinTarget:       0.8,
	}
	record.Targets = &models.Targets{Calories: 2030, Protein: 128, Fat: 56, Carbohydrates: 254}

	require.NoError(t, s.Put("user1", record))

	t.Run("round-trips through memory", func(t *testing.T) {
		got, ok := s.Get("user1")
		require.True(t, ok)
		assert.Equal(t, record, got)
	})

	t.Run("round-trips through disk", func(t *testing.T) {
		reloaded, err := NewUserStore(path)
		require.NoError(t, err)

		got, ok := reloaded.Get("user1")
		require.True(t, ok)
		assert.Equal(t, record.Profile, got.Profile)
		assert.Equal(t, record.Targets, got.Targets)
	})

	t.Run("file is pretty-printed with stable keys", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		content := string(data)
		assert.True(t, strings.Contains(content, "\n    "), "expected indented output")
		assert.Contains(t, content, `"profile"`)
		assert.Contains(t, content, `"biological_sex"`)
		assert.Contains(t, content, `"rate_of_progress"`)
		assert.Contains(t, content, `"food_log"`)
		assert.Contains(t, content, `"coach_chat"`)
	})

	t.Run("put replaces wholesale", func(t *testing.T) {
		updated := record
		updated.Profile.Weight = 155
		require.NoError(t, s.Put("user1", updated))

		got, _ := s.Get("user1")
		assert.Equal(t, 155.0, got.Profile.Weight)
	})
}
