package catalog

import "strings"

// Match reports whether name matches the restricted glob pattern.
// Supported forms: "*" (everything), "*.<ext>" (extension suffix), or an
// exact literal filename. Snapshot names are always generated by this
// system, so nothing richer is needed.
func Match(pattern, name string) bool {
	switch {
	case pattern == "" || pattern == "*":
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(name, pattern[1:])
	default:
		return name == pattern
	}
}
