package glossa

import (
	"io"
	"log/slog"
)

// Option configures a Store during construction.
type Option func(*Store) error

// WithDefaultLocale sets the fallback locale. It is also the active locale
// until SetLocale succeeds.
func WithDefaultLocale(code string) Option {
	return func(s *Store) error {
		if code == "" {
			return ErrEmptyLocale
		}
		s.defaultLocale = code
		return nil
	}
}

// WithSeparator sets the separator joining namespace and key segments.
// Pass it before WithTranslations so seeded trees flatten with the right
// separator.
func WithSeparator(sep string) Option {
	return func(s *Store) error {
		if sep == "" {
			return ErrEmptySeparator
		}
		s.separator = sep
		return nil
	}
}

// WithLogger sets the logger used for ingestion and reload events.
// Without it the store logs nowhere.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) error {
		if l != nil {
			s.log = l
		}
		return nil
	}
}

// WithErrorReporter registers the sink receiving per-file ingestion
// failures. Register it before any ingestion call: failures raised earlier
// are dropped.
func WithErrorReporter(r ErrorReporter) Option {
	return func(s *Store) error {
		s.reporter = r
		return nil
	}
}

// WithDebugOptions sets the initial debug configuration.
func WithDebugOptions(opts DebugOptions) Option {
	return func(s *Store) error {
		s.debug = opts
		return nil
	}
}

// WithTranslations seeds a locale's table from an in-memory nested tree,
// namespaced the same way file ingestion would namespace it. Useful for
// tests and embedded defaults that have no file behind them.
func WithTranslations(locale, namespace string, translations map[string]any) Option {
	return func(s *Store) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		if len(translations) == 0 {
			return nil
		}

		flat, err := flattenTree(translations, namespace, s.separator)
		if err != nil {
			return err
		}

		table, ok := s.translations[locale]
		if !ok {
			table = make(map[string]string, len(flat))
			s.translations[locale] = table
		}
		for key, value := range flat {
			table[key] = value
		}
		return nil
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
