package xstrings

// Truncate shortens s to at most max characters, appending an ellipsis
// marker when anything was cut. Counting is rune-based so multi-byte
// characters are never split.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
