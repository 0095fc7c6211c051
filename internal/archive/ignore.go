package archive

import "github.com/bmatcuk/doublestar/v4"

// filterIgnored drops any name matching one of patterns. An invalid
// pattern never matches (doublestar.Match's error is treated as a miss)
// rather than failing the whole listing.
func filterIgnored(names []string, patterns []string) []string {
	if len(patterns) == 0 {
		return names
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !matchesAny(patterns, name) {
			out = append(out, name)
		}
	}
	return out
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
