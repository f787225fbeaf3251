package cmd

import (
	"fmt"
	"strings"
)

// parsePairs converts "key=value" strings into a map. Values may contain
// further equals signs; keys may not be empty.
func parsePairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid pair %q: expected key=value", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid pair %q: key cannot be empty", pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
