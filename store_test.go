package glossa_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossadev/glossa"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates store with defaults", func(t *testing.T) {
		t.Parallel()
		store, err := glossa.New()
		require.NoError(t, err)
		require.NotNil(t, store)
		require.Equal(t, "en", store.DefaultLocale())
		require.Equal(t, "en", store.Locale())
		require.Equal(t, ".", store.Separator())
	})

	t.Run("sets custom default locale", func(t *testing.T) {
		t.Parallel()
		store, err := glossa.New(glossa.WithDefaultLocale("pl"))
		require.NoError(t, err)
		require.Equal(t, "pl", store.DefaultLocale())
		require.Equal(t, "pl", store.Locale())
	})

	t.Run("returns error for empty default locale", func(t *testing.T) {
		t.Parallel()
		_, err := glossa.New(glossa.WithDefaultLocale(""))
		require.Error(t, err)
		require.ErrorIs(t, err, glossa.ErrEmptyLocale)
	})

	t.Run("returns error for empty separator", func(t *testing.T) {
		t.Parallel()
		_, err := glossa.New(glossa.WithSeparator(""))
		require.Error(t, err)
		require.ErrorIs(t, err, glossa.ErrEmptySeparator)
	})

	t.Run("seeds translations", func(t *testing.T) {
		t.Parallel()
		store, err := glossa.New(
			glossa.WithTranslations("en", "app", map[string]any{
				"hello": "Hello",
			}),
		)
		require.NoError(t, err)
		require.Equal(t, "Hello", store.Translate("app.hello"))
	})

	t.Run("returns error for empty locale in translations", func(t *testing.T) {
		t.Parallel()
		_, err := glossa.New(
			glossa.WithTranslations("", "app", map[string]any{"hello": "Hello"}),
		)
		require.ErrorIs(t, err, glossa.ErrEmptyLocale)
	})

	t.Run("returns error for empty namespace in translations", func(t *testing.T) {
		t.Parallel()
		_, err := glossa.New(
			glossa.WithTranslations("en", "", map[string]any{"hello": "Hello"}),
		)
		require.ErrorIs(t, err, glossa.ErrEmptyNamespace)
	})
}

func TestSetLocale(t *testing.T) {
	t.Parallel()

	t.Run("switches to loaded locale", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)
		require.True(t, store.SetLocale("fr"))
		require.Equal(t, "fr", store.Locale())
	})

	t.Run("refuses unloaded locale and keeps active one", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)
		require.True(t, store.SetLocale("fr"))
		require.False(t, store.SetLocale("de"))
		require.Equal(t, "fr", store.Locale())
	})

	t.Run("refuses locale with empty table", func(t *testing.T) {
		t.Parallel()
		store, err := glossa.New()
		require.NoError(t, err)
		// The implicit default table exists but holds zero keys.
		require.False(t, store.SetLocale("en"))
	})
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("resolves from active locale", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)
		require.True(t, store.SetLocale("fr"))
		assert.Equal(t, "Jouer", store.Translate("ui.button.play"))
	})

	t.Run("falls back to default locale", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)
		require.True(t, store.SetLocale("fr"))
		// "ui.only_en" exists in en only.
		assert.Equal(t, "English only", store.Translate("ui.only_en"))
	})

	t.Run("returns sentinel for unknown key", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)
		assert.Equal(t, "[Missing:ui.nope]", store.Translate("ui.nope"))
	})

	t.Run("T is an alias", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)
		assert.Equal(t, store.Translate("ui.button.play"), store.T("ui.button.play"))
	})
}

func TestHasKey(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.True(t, store.SetLocale("fr"))

	assert.True(t, store.HasKey("ui.button.play"))
	assert.True(t, store.HasKey("ui.only_en"), "fallback scope includes the default locale")
	assert.False(t, store.HasKey("ui.random.thing"))
}

func TestStats(t *testing.T) {
	t.Parallel()

	store, err := glossa.New(
		glossa.WithTranslations("en", "ui", map[string]any{"a": "A", "b": "B"}),
		glossa.WithTranslations("fr", "ui", map[string]any{"a": "A"}),
	)
	require.NoError(t, err)

	stats := store.Stats()
	require.Equal(t, []glossa.LocaleStat{
		{Locale: "en", Keys: 2},
		{Locale: "fr", Keys: 1},
	}, stats)
}

func TestLocales(t *testing.T) {
	t.Parallel()

	store, err := glossa.New(
		glossa.WithDefaultLocale("pl"),
		glossa.WithTranslations("pl", "ui", map[string]any{"a": "A"}),
		glossa.WithTranslations("en", "ui", map[string]any{"a": "A"}),
		glossa.WithTranslations("de", "ui", map[string]any{"a": "A"}),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"pl", "de", "en"}, store.Locales(), "default locale first, rest sorted")
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = store.Translate("ui.button.play")
				_ = store.HasKey("ui.only_en")
				_ = store.Stats()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				store.SetLocale("fr")
				store.SetLocale("en")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				store.SetDebugMode(true)
				store.SetDebugMode(false)
			}
		}()
	}
	wg.Wait()
}

// newTestStore returns a store seeded with the fixtures most tests share.
func newTestStore(t *testing.T) *glossa.Store {
	t.Helper()

	store, err := glossa.New(
		glossa.WithDefaultLocale("en"),
		glossa.WithTranslations("en", "ui", map[string]any{
			"button":  map[string]any{"play": "Play", "stop": "Stop"},
			"only_en": "English only",
		}),
		glossa.WithTranslations("fr", "ui", map[string]any{
			"button": map[string]any{"play": "Jouer", "stop": "Arrêter"},
		}),
	)
	require.NoError(t, err)
	return store
}
