package html

import "regexp"

// Chunkers are position-anchored pattern matchers: each is tried
// against the unconsumed suffix of the source and either fails or
// consumes some prefix of it. Anchoring against the suffix (rather
// than seeking from the whole source) keeps a probe from searching
// ahead for a later match, the same technique TeraWattHour-html's
// Tokenizer uses matching "^..." patterns against template[i:].
var (
	openingTagStartRe = regexp.MustCompile(`^(?i)<((?:[a-z0-9-]+:)?[a-z0-9-]+)`)
	closingTagRe      = regexp.MustCompile(`^(?i)</((?:[a-z0-9-]+:)?[a-z0-9-]+)>`)
	commentOpenRe     = regexp.MustCompile(`^<!--`)
	commentBodyRe     = regexp.MustCompile(`(?s)^(.*?)-->`)
	scriptBodyRe      = regexp.MustCompile(`(?s)^(.*?)</script>`)
	textRe            = regexp.MustCompile(`^[^<]+`)
	tagEndRe          = regexp.MustCompile(`^[ \t\n\f\r]*(/?>)`)
	attributeNameRe   = regexp.MustCompile(`^(?i)[ \t\n\f\r]+((?:[a-z0-9_-]+:)?[a-z0-9_-]+)(?:[ \t\n\f\r]*(=)[ \t\n\f\r]*)?`)
)

// matchOpeningTagStart recognizes "<" followed by a tag name. It does
// not consume the tag's closing ">" or "/>"; that's matchTagEnd's job.
func matchOpeningTagStart(s string) (name string, length int, ok bool) {
	m := openingTagStartRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return m[1], len(m[0]), true
}

// matchClosingTag recognizes a complete "</name>" sequence.
func matchClosingTag(s string) (name string, length int, ok bool) {
	m := closingTagRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return m[1], len(m[0]), true
}

// matchCommentOpen recognizes the literal "<!--".
func matchCommentOpen(s string) (length int, ok bool) {
	m := commentOpenRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return len(m[0]), true
}

// matchCommentBody recognizes everything up to and including the
// first "-->", capturing the body without the terminator.
func matchCommentBody(s string) (body string, length int, ok bool) {
	m := commentBodyRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return m[1], len(m[0]), true
}

// matchScriptBody recognizes everything up to and including the first
// "</script>", case-sensitively, capturing the body without the
// closing tag.
func matchScriptBody(s string) (body string, length int, ok bool) {
	m := scriptBodyRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return m[1], len(m[0]), true
}

// matchText recognizes a run of one or more characters that aren't
// "<".
func matchText(s string) (text string, length int, ok bool) {
	m := textRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return m[0], len(m[0]), true
}

// matchTagEnd recognizes optional whitespace followed by ">" or "/>",
// capturing the terminator literally.
func matchTagEnd(s string) (terminator string, length int, ok bool) {
	m := tagEndRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return m[1], len(m[0]), true
}

// matchAttributeName recognizes mandatory leading whitespace, then an
// attribute name, then optionally "=" surrounded by whitespace.
// hasEquals reports whether the "=" was present, distinguishing a
// valueless attribute from one whose value hasn't been read yet.
func matchAttributeName(s string) (name string, hasEquals bool, length int, ok bool) {
	m := attributeNameRe.FindStringSubmatch(s)
	if m == nil {
		return "", false, 0, false
	}
	return m[1], m[2] == "=", len(m[0]), true
}
