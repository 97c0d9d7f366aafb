package html

// Token is a low-level tokenizer output. It is a closed set of
// concrete types; callers type-switch on the concrete type or compare
// Kind().
type Token interface {
	Kind() string
}

// StartToken marks the beginning of a tokenization run. Tokenize and
// Parse omit it from their public sequences.
type StartToken struct{}

func (t *StartToken) Kind() string { return "START" }

// OpeningTagToken is emitted when the tokenizer recognizes the start
// of an opening tag, e.g. the "<div" in "<div class=\"a\">".
type OpeningTagToken struct {
	Name string
}

func (t *OpeningTagToken) Kind() string { return "OPENING_TAG" }

// AttributeToken is emitted once per attribute found while gathering
// an opening tag. Value is empty for a valueless attribute.
type AttributeToken struct {
	Name  string
	Value string
}

func (t *AttributeToken) Kind() string { return "ATTRIBUTE" }

// OpeningTagEndToken closes out an opening tag. Token is either ">"
// or "/>", literally as it appeared in the source.
type OpeningTagEndToken struct {
	Name  string
	Token string
}

func (t *OpeningTagEndToken) Kind() string { return "OPENING_TAG_END" }

// TextToken carries a run of character data. The tokenizer never
// emits two of these back to back; adjacent runs are coalesced.
type TextToken struct {
	Text string
}

func (t *TextToken) Kind() string { return "TEXT" }

// CommentToken carries the body of an HTML comment, with the leading
// "<!--" and trailing "-->" already stripped.
type CommentToken struct {
	Text string
}

func (t *CommentToken) Kind() string { return "COMMENT" }

// ClosingTagToken is emitted for a "</name>" sequence.
type ClosingTagToken struct {
	Name string
}

func (t *ClosingTagToken) Kind() string { return "CLOSING_TAG" }

// DoneToken marks the end of the token stream. Tokenize and Parse omit
// it from their public sequences.
type DoneToken struct{}

func (t *DoneToken) Kind() string { return "DONE" }
