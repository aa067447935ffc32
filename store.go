package glossa

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// DefaultLocale is the fallback locale used when no default is specified.
const DefaultLocale = "en"

// DefaultSeparator joins namespace and nested key segments.
const DefaultSeparator = "."

// Store owns the per-locale translation tables, the active locale, the set
// of tracked translation files, and the debug configuration. All of that
// state is guarded by one reader/writer lock: lookups run concurrently with
// each other, while any mutation (ingestion, reload, locale switch, debug
// changes) takes exclusive access. There is no per-locale or per-key
// locking.
type Store struct {
	mu sync.RWMutex

	// translations maps locale code to its flat key table.
	translations map[string]map[string]string

	// files holds tracked paths in first-ingestion order; modTimes holds the
	// last-observed modification time per path. Exactly one record per path.
	files    []string
	modTimes map[string]time.Time

	locale        string
	defaultLocale string
	separator     string

	debug    DebugOptions
	reporter ErrorReporter
	log      *slog.Logger
}

// New creates a Store configured by the given options. The store starts
// with an empty table for the default locale, which is also the active one.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		translations:  make(map[string]map[string]string),
		modTimes:      make(map[string]time.Time),
		defaultLocale: DefaultLocale,
		separator:     DefaultSeparator,
		debug:         DefaultDebugOptions(),
		log:           discardLogger(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	s.locale = s.defaultLocale
	if _, ok := s.translations[s.defaultLocale]; !ok {
		s.translations[s.defaultLocale] = make(map[string]string)
	}

	return s, nil
}

// SetLocale switches the active locale. It succeeds only when at least one
// key has already been loaded for the target locale; otherwise the active
// locale is left unchanged and false is returned. Locales are never created
// implicitly through this call.
func (s *Store) SetLocale(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.translations[code]) == 0 {
		return false
	}
	s.locale = code
	return true
}

// Locale returns the active locale code.
func (s *Store) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// DefaultLocale returns the fallback locale code.
func (s *Store) DefaultLocale() string {
	return s.defaultLocale
}

// Separator returns the separator joining namespace and key segments.
func (s *Store) Separator() string {
	return s.separator
}

// Translate resolves a namespaced key against the active locale's table,
// falling back to the default locale's table on a miss. A key absent from
// both yields the in-band sentinel "[Missing:<key>]" rather than an error,
// so display code never needs a failure branch. When debug output is
// enabled the result is prefixed with the bracketed key.
func (s *Store) Translate(key string) string {
	prefix, value := s.resolve(key)
	return prefix + value
}

// resolve returns the debug decoration and the raw resolved text
// separately, so placeholder substitution can run over the value without
// ever touching the decoration.
func (s *Store) resolve(key string) (prefix, value string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix = s.debug.decorate(key)

	if value, ok := s.translations[s.locale][key]; ok {
		return prefix, value
	}
	if value, ok := s.translations[s.defaultLocale][key]; ok {
		return prefix, value
	}

	missing := "[Missing:" + key + "]"
	if s.debug.Enabled && s.debug.Colored {
		return "", s.debug.KeyColor + missing + s.debug.ResetColor
	}
	return "", missing
}

// T is shorthand for Translate.
func (s *Store) T(key string) string {
	return s.Translate(key)
}

// HasKey reports whether the key resolves in the active or the default
// locale's table, mirroring Translate's fallback scope.
func (s *Store) HasKey(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.translations[s.locale][key]; ok {
		return true
	}
	_, ok := s.translations[s.defaultLocale][key]
	return ok
}

// LocaleStat is one row of a Stats snapshot.
type LocaleStat struct {
	Locale string
	Keys   int
}

// Stats returns a point-in-time snapshot of loaded locales and their key
// counts, sorted by locale code. The slice does not track later mutations.
func (s *Store) Stats() []LocaleStat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make([]LocaleStat, 0, len(s.translations))
	for locale, table := range s.translations {
		stats = append(stats, LocaleStat{Locale: locale, Keys: len(table)})
	}
	slices.SortFunc(stats, func(a, b LocaleStat) int {
		return cmp.Compare(a.Locale, b.Locale)
	})
	return stats
}

// Locales returns the loaded locale codes with the default locale first and
// the rest sorted alphabetically.
func (s *Store) Locales() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	others := make([]string, 0, len(s.translations))
	for locale := range s.translations {
		if locale != s.defaultLocale {
			others = append(others, locale)
		}
	}
	slices.Sort(others)

	locales := make([]string, 0, len(others)+1)
	locales = append(locales, s.defaultLocale)
	return append(locales, others...)
}

// merge writes a flat key map into a locale's table under the exclusive
// lock and records the file's observed modification time. Last write wins;
// re-ingesting a path updates its record, never duplicates it.
func (s *Store) merge(path string, modTime time.Time, perLocale map[string]map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for locale, flat := range perLocale {
		table, ok := s.translations[locale]
		if !ok {
			table = make(map[string]string, len(flat))
			s.translations[locale] = table
		}
		for key, value := range flat {
			table[key] = value
		}
	}

	if _, tracked := s.modTimes[path]; !tracked {
		s.files = append(s.files, path)
	}
	s.modTimes[path] = modTime
}
