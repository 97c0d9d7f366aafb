package html

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type tokenizerState int

const (
	inText tokenizerState = iota
	inTag
	inComment
	inScript
)

// Tokenizer drives a four-state automaton over a cursor into an HTML
// source string, emitting low-level Tokens. It never fails: every
// recovery rule (stray "<", abandoned tag, unterminated comment or
// script) is implemented as a state transition, never an error return.
//
// A Tokenizer is single-shot and not safe for concurrent use; build a
// new one to re-tokenize.
type Tokenizer struct {
	src        string
	pos        int
	state      tokenizerState
	currentTag string
	halted     bool
	pending    []Token
	log        *logrus.Logger
}

// NewTokenizer constructs a Tokenizer over html. It does no work until
// iterated.
func NewTokenizer(html string, opts ...Option) *Tokenizer {
	s := newSettings(opts)
	return &Tokenizer{src: html, state: inText, log: s.log}
}

// Tokenize returns a lazy, forward-only, single-shot sequence of
// low-level tokens for html. Empty input yields an empty sequence.
func Tokenize(html string) iter.Seq[Token] {
	return NewTokenizer(html).All()
}

// All returns a lazy sequence over the tokenizer's remaining output,
// coalescing adjacent low-level Text tokens into one before emission.
// Abandoning iteration early is safe; nothing needs to be released.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var buf strings.Builder

		flush := func() bool {
			if buf.Len() == 0 {
				return true
			}
			text := buf.String()
			buf.Reset()
			return yield(&TextToken{Text: text})
		}

		for {
			tok := t.next()

			if _, ok := tok.(*DoneToken); ok {
				flush()
				return
			}

			if txt, ok := tok.(*TextToken); ok {
				buf.WriteString(txt.Text)
				continue
			}

			if !flush() {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// next advances the automaton until it has a token ready to emit. A
// single call may apply several non-emitting transitions internally
// (e.g. an abandoned tag falling back to InText) before returning.
func (t *Tokenizer) next() Token {
	if len(t.pending) > 0 {
		tok := t.pending[0]
		t.pending = t.pending[1:]
		return tok
	}

	for {
		switch t.state {
		case inText:
			if tok, ok := t.stepText(); ok {
				return tok
			}
		case inTag:
			if tok, ok := t.stepTag(); ok {
				return tok
			}
		case inComment:
			return t.stepComment()
		case inScript:
			toks := t.stepScript()
			t.pending = toks
			return t.next()
		}
	}
}

func (t *Tokenizer) rest() string {
	return t.src[t.pos:]
}

func (t *Tokenizer) stepText() (Token, bool) {
	if t.halted {
		return &DoneToken{}, true
	}

	rest := t.rest()
	if rest == "" {
		return &DoneToken{}, true
	}

	if rest[0] == '<' {
		if name, length, ok := matchOpeningTagStart(rest); ok {
			t.pos += length
			t.currentTag = name
			t.state = inTag
			return &OpeningTagToken{Name: name}, true
		}
		if name, length, ok := matchClosingTag(rest); ok {
			t.pos += length
			return &ClosingTagToken{Name: name}, true
		}
		if length, ok := matchCommentOpen(rest); ok {
			t.pos += length
			t.state = inComment
			return nil, false
		}
	}

	if text, length, ok := matchText(rest); ok {
		t.pos += length
		return &TextToken{Text: text}, true
	}

	// Safety valve: a stray "<" that isn't a tag, closing tag, or
	// comment open (e.g. "<<<br>" or "< br>"). Consume exactly one
	// rune as text so the automaton always makes forward progress.
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		size = 1
	}
	t.pos += size
	t.log.WithField("rune", string(r)).Debug("stray '<' fell back to literal text")
	return &TextToken{Text: string(r)}, true
}

func (t *Tokenizer) stepTag() (Token, bool) {
	rest := t.rest()

	if name, hasEquals, length, ok := matchAttributeName(rest); ok {
		t.pos += length
		if hasEquals {
			value, valueLen := readAttributeValue(t.rest())
			t.pos += valueLen
			return &AttributeToken{Name: name, Value: value}, true
		}
		return &AttributeToken{Name: name, Value: ""}, true
	}

	if terminator, length, ok := matchTagEnd(rest); ok {
		t.pos += length
		name := t.currentTag
		t.currentTag = ""
		if strings.EqualFold(name, "script") {
			t.state = inScript
		} else {
			t.state = inText
		}
		return &OpeningTagEndToken{Name: name, Token: terminator}, true
	}

	// Abandoned tag: input ended (or hit something unparseable) while
	// still gathering attributes. No token is emitted for it; the
	// parser's building frame for it is simply discarded.
	t.log.WithField("tag", t.currentTag).Debug("abandoned opening tag, no closing '>' found")
	t.state = inText
	t.currentTag = ""
	return nil, false
}

func (t *Tokenizer) stepComment() Token {
	if t.halted {
		return &DoneToken{}
	}

	rest := t.rest()
	if body, length, ok := matchCommentBody(rest); ok {
		t.pos += length
		t.state = inText
		return &CommentToken{Text: body}
	}

	// Unterminated comment: the remainder of the input becomes a
	// single Comment, and the stream ends.
	t.log.Debug("unterminated comment, consuming remainder of input")
	t.pos = len(t.src)
	t.halted = true
	return &CommentToken{Text: rest}
}

func (t *Tokenizer) stepScript() []Token {
	if t.halted {
		return []Token{&DoneToken{}}
	}

	rest := t.rest()
	if body, length, ok := matchScriptBody(rest); ok {
		t.pos += length
		t.state = inText
		return []Token{&TextToken{Text: body}, &ClosingTagToken{Name: "script"}}
	}

	// Unterminated script body: the remainder becomes a single Text
	// token, and the stream ends.
	t.log.Debug("unterminated script body, consuming remainder of input")
	t.pos = len(t.src)
	t.halted = true
	return []Token{&TextToken{Text: rest}}
}
