// Package dedupe prunes raw model candidates before they are returned.
package dedupe

import "strings"

// Filter drops candidates that echo the source sentence (ignoring case) and
// exact duplicates of an earlier candidate. Order is preserved and the first
// occurrence wins. The result may be empty.
func Filter(source string, candidates []string) []string {
	echo := strings.ToLower(source)
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))

	for _, c := range candidates {
		if strings.ToLower(c) == echo {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
