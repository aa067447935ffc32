package glossa

import "golang.org/x/text/language"

// MatchLocale picks the best loaded locale for an Accept-Language header
// using x/text language matching, so "en-US,en;q=0.9,fr;q=0.8" resolves to
// a loaded "en" even without an exact tag match. Falls back to the default
// locale when the header is empty or nothing matches.
//
// The result is a candidate for SetLocale; MatchLocale itself does not
// switch the active locale.
func (s *Store) MatchLocale(acceptLanguage string) string {
	locales := s.Locales()

	tags := make([]language.Tag, 0, len(locales))
	codes := make([]string, 0, len(locales))
	for _, code := range locales {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return s.defaultLocale
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return codes[0]
	}

	_, index, _ := language.NewMatcher(tags).Match(desired...)
	return codes[index]
}
