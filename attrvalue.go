package html

import "strings"

// readAttributeValue reads a single attribute value starting at s[0].
// A quoted value (single or double) reads until the matching quote; a
// missing closing quote consumes the rest of the input as the value.
// An unquoted value reads a run of characters that are neither
// whitespace nor ">"; an empty run is a valid, empty value.
func readAttributeValue(s string) (value string, length int) {
	if s == "" {
		return "", 0
	}

	switch quote := s[0]; quote {
	case '"', '\'':
		if end := strings.IndexByte(s[1:], quote); end != -1 {
			return s[1 : 1+end], end + 2
		}
		return s[1:], len(s)
	default:
		end := strings.IndexFunc(s, func(r rune) bool {
			return isWhitespace(r) || r == '>'
		})
		if end == -1 {
			return s, len(s)
		}
		return s[:end], end
	}
}
