package glossa

// ANSI tokens used by the default debug configuration.
const (
	ColorGreen = "\x1b[32m"
	ColorReset = "\x1b[0m"
)

// DebugOptions controls key annotation on lookup results. When enabled,
// every resolved value (including the missing-key sentinel) is prefixed with
// the bracketed lookup key so translators can see which key produced which
// text. The decoration is applied before placeholder substitution and is
// never scanned for placeholders itself.
type DebugOptions struct {
	// Enabled turns key annotation on.
	Enabled bool
	// Colored wraps the bracketed key in KeyColor/ResetColor tokens.
	Colored bool
	// KeyColor is the token emitted before the bracketed key.
	KeyColor string
	// ResetColor is the token emitted after the bracketed key.
	ResetColor string
	// Prefix is prepended before the bracketed key.
	Prefix string
}

// DefaultDebugOptions returns the debug configuration used when none is set:
// disabled, green key highlight when turned on.
func DefaultDebugOptions() DebugOptions {
	return DebugOptions{
		Colored:    true,
		KeyColor:   ColorGreen,
		ResetColor: ColorReset,
	}
}

// decorate returns the annotation prefix for a key, or "" when debug output
// is disabled. Caller must hold at least a read lock.
func (d DebugOptions) decorate(key string) string {
	if !d.Enabled {
		return ""
	}
	prefix := d.Prefix
	if d.Colored {
		return prefix + d.KeyColor + "[" + key + "]" + d.ResetColor + " "
	}
	return prefix + "[" + key + "] "
}

// SetDebugOptions replaces the store's debug configuration.
func (s *Store) SetDebugOptions(opts DebugOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = opts
}

// SetDebugMode toggles key annotation without touching the rest of the
// debug configuration.
func (s *Store) SetDebugMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug.Enabled = enabled
}

// DebugMode reports whether key annotation is currently enabled.
func (s *Store) DebugMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.debug.Enabled
}

// DebugOptions returns a copy of the current debug configuration.
func (s *Store) DebugOptions() DebugOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.debug
}
