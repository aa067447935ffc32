package glossa

import (
	"fmt"
	"strings"
)

// frame is a pending subtree on the flattening work queue.
type frame struct {
	tree   map[string]any
	prefix string
}

// flattenTree converts a nested translation tree into a flat map of dotted
// keys to string values. Traversal uses an explicit work queue instead of
// recursion so arbitrarily deep documents cannot exhaust the call stack.
//
// String leaves are kept, nested objects are descended into, and everything
// else (numbers, booleans, null, arrays) is dropped. Raw keys that already
// contain the separator are rejected: they would be indistinguishable from
// nested paths after flattening.
func flattenTree(root map[string]any, prefix, separator string) (map[string]string, error) {
	out := make(map[string]string)

	stack := []frame{{tree: root, prefix: prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for key, value := range f.tree {
			if strings.Contains(key, separator) {
				return nil, fmt.Errorf("%w: key %q contains separator %q", ErrMalformed, key, separator)
			}

			fullKey := key
			if f.prefix != "" {
				fullKey = f.prefix + separator + key
			}

			switch v := value.(type) {
			case string:
				out[fullKey] = v
			case map[string]any:
				stack = append(stack, frame{tree: v, prefix: fullKey})
			}
		}
	}

	return out, nil
}
