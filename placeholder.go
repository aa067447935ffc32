package glossa

import (
	"fmt"
	"strings"
)

// M holds placeholder values for substitution, keyed by placeholder name.
type M map[string]any

// ReplacePlaceholders replaces {name} tokens in the text with values from
// the provided map. The scan is a single left-to-right pass with no nesting:
// each '{' is closed by the next '}'. Tokens whose name is not in the map,
// and an unterminated '{', are copied through unchanged rather than treated
// as errors.
//
// Example:
//
//	ReplacePlaceholders("Hello, {user}!", M{"user": "Oksi"})
//	// "Hello, Oksi!"
func ReplacePlaceholders(text string, params M) string {
	if len(params) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 32)

	pos := 0
	for pos < len(text) {
		open := strings.IndexByte(text[pos:], '{')
		if open < 0 {
			b.WriteString(text[pos:])
			break
		}
		open += pos

		b.WriteString(text[pos:open])

		end := strings.IndexByte(text[open+1:], '}')
		if end < 0 {
			b.WriteString(text[open:])
			break
		}
		end += open + 1

		name := text[open+1 : end]
		if value, ok := params[name]; ok {
			fmt.Fprintf(&b, "%v", value)
		} else {
			b.WriteString(text[open : end+1])
		}

		pos = end + 1
	}

	return b.String()
}
