package html

// isWhitespace matches the same whitespace class the chunker patterns
// use: TAB, LF, FF, CR, and SPACE.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}
