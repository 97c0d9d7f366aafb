package html

// ParseEvent is a high-level parser output. It is a closed set of
// concrete types; callers type-switch on the concrete type or compare
// Kind().
type ParseEvent interface {
	Kind() string
}

// OpenEvent announces the start of an element. It is always followed,
// eventually, by exactly one CloseEvent with the same Name. For a
// self-closing element (SelfClosing true) the CloseEvent follows
// immediately with no intervening events.
type OpenEvent struct {
	Name        string
	Attributes  *Attributes
	SelfClosing bool
}

func (e *OpenEvent) Kind() string { return "OPEN" }

// TextEvent carries character data outside of any tag or comment.
type TextEvent struct {
	Text string
}

func (e *TextEvent) Kind() string { return "TEXT" }

// CommentEvent carries the body of an HTML comment.
type CommentEvent struct {
	Text string
}

func (e *CommentEvent) Kind() string { return "COMMENT" }

// CloseEvent announces the end of an element, either because the
// source closed it explicitly, because the parser inferred an
// implicit close, or because input ended with the element still open.
type CloseEvent struct {
	Name        string
	SelfClosing bool
}

func (e *CloseEvent) Kind() string { return "CLOSE" }
