package glossa

import "maps"

// LocalizedString binds a translation key and placeholder values to a store
// without resolving them. Resolution happens on every String call against
// whatever locale is active at that moment, so two renders around a locale
// switch can legitimately differ. A plain string obtained from an earlier
// call is a one-time snapshot and never updates.
//
// The value is immutable after construction and safe to share.
type LocalizedString struct {
	store  *Store
	key    string
	params M
}

// L creates a LocalizedString for the key. Multiple placeholder maps are
// merged left to right; the maps are copied, so later changes to the
// arguments do not leak into the value.
func (s *Store) L(key string, params ...M) LocalizedString {
	var merged M
	if len(params) > 0 {
		merged = make(M)
		for _, p := range params {
			maps.Copy(merged, p)
		}
	}
	return LocalizedString{store: s, key: key, params: merged}
}

// Key returns the bound translation key.
func (ls LocalizedString) Key() string {
	return ls.key
}

// String resolves the key through the store's lookup (fallback, debug
// decoration, missing-key sentinel included) and applies placeholder
// substitution when the value carries parameters. Implements fmt.Stringer.
func (ls LocalizedString) String() string {
	prefix, value := ls.store.resolve(ls.key)
	if len(ls.params) == 0 {
		return prefix + value
	}
	// Substitution runs over the resolved value only; the debug decoration
	// is never scanned for placeholders.
	return prefix + ReplacePlaceholders(value, ls.params)
}
