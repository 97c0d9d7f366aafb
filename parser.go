package html

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// pendingTag is a stack frame for an element whose opening has been
// emitted and whose closing has not. It is pushed when an
// OpeningTagEndToken resolves as non-self-closing, and popped on an
// explicit match, an implicit-close rule, or the final drain.
type pendingTag struct {
	name       string
	attributes *Attributes
}

// Parser consumes a Tokenizer's output through a stack of pendingTag
// frames plus one transient "building" frame that accumulates
// attributes between an OpeningTagToken and its OpeningTagEndToken. It
// resolves self-closing, implicit-close, and mismatch cases per the
// HTML5 optional-tag tables in tables.go, and flushes any unclosed
// elements at end of input.
//
// A Parser is single-shot and not safe for concurrent use; build a
// new one to re-parse.
type Parser struct {
	tok      *Tokenizer
	stack    []pendingTag
	building *pendingTag
	log      *logrus.Logger
}

// NewParser constructs a Parser over html. It does no work until
// iterated.
func NewParser(html string, opts ...Option) *Parser {
	s := newSettings(opts)
	return &Parser{
		tok: NewTokenizer(html, WithLogger(s.log)),
		log: s.log,
	}
}

// Parse returns a lazy, forward-only, single-shot sequence of
// high-level parse events for html. Empty input yields an empty
// sequence.
func Parse(html string) iter.Seq[ParseEvent] {
	return NewParser(html).All()
}

// All returns a lazy sequence over the parser's remaining output.
// Abandoning iteration early is safe; nothing needs to be released.
func (p *Parser) All() iter.Seq[ParseEvent] {
	return func(yield func(ParseEvent) bool) {
		for tok := range p.tok.All() {
			for _, ev := range p.handle(tok) {
				if !yield(ev) {
					return
				}
			}
		}
		for _, ev := range p.drain() {
			if !yield(ev) {
				return
			}
		}
	}
}

func (p *Parser) push(name string, attrs *Attributes) {
	p.stack = append(p.stack, pendingTag{name: name, attributes: attrs})
}

func (p *Parser) pop() pendingTag {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return top
}

// peek returns the frame n levels below the top of the stack: peek(0)
// is the top, peek(1) is one below.
func (p *Parser) peek(n int) (pendingTag, bool) {
	idx := len(p.stack) - 1 - n
	if idx < 0 {
		return pendingTag{}, false
	}
	return p.stack[idx], true
}

// handle processes a single tokenizer token, returning zero or more
// parse events. At most three events come out of a single token: an
// implicit sibling-close, then an Open, then an immediate self-close.
func (p *Parser) handle(tok Token) []ParseEvent {
	switch t := tok.(type) {
	case *OpeningTagToken:
		p.building = &pendingTag{name: t.Name, attributes: newAttributes()}
		return nil

	case *AttributeToken:
		if p.building != nil {
			p.building.attributes.set(t.Name, t.Value)
		}
		return nil

	case *OpeningTagEndToken:
		return p.handleOpeningTagEnd(t)

	case *ClosingTagToken:
		return p.handleClosingTag(t.Name)

	case *TextToken:
		return []ParseEvent{&TextEvent{Text: t.Text}}

	case *CommentToken:
		return []ParseEvent{&CommentEvent{Text: t.Text}}

	default:
		return nil
	}
}

func (p *Parser) handleOpeningTagEnd(t *OpeningTagEndToken) []ParseEvent {
	if p.building == nil {
		// Pathological input: the tokenizer produced an end with no
		// matching start. Pass it through as literal text instead of
		// dropping it.
		return []ParseEvent{&TextEvent{Text: t.Token}}
	}

	name := p.building.name
	attrs := p.building.attributes
	p.building = nil

	isSelfClose := t.Token == "/>" || isVoidElement(name)

	var events []ParseEvent
	if top, ok := p.peek(0); ok && closesSibling(top.name, name) {
		p.pop()
		events = append(events, &CloseEvent{Name: top.name, SelfClosing: false})
		p.log.WithFields(logrus.Fields{"closed": top.name, "opening": name}).Debug("implicit close by sibling")
	}

	events = append(events, &OpenEvent{Name: name, Attributes: attrs, SelfClosing: isSelfClose})

	if isSelfClose {
		events = append(events, &CloseEvent{Name: name, SelfClosing: true})
	} else {
		p.push(name, attrs)
	}

	return events
}

func (p *Parser) handleClosingTag(name string) []ParseEvent {
	if top, ok := p.peek(0); ok && top.name == name {
		p.pop()
		return []ParseEvent{&CloseEvent{Name: name, SelfClosing: false}}
	}

	if below, ok := p.peek(1); ok && below.name == name {
		if top, _ := p.peek(0); isClosedByParent(top.name) {
			closedTop := p.pop()
			closedBelow := p.pop()
			p.log.WithFields(logrus.Fields{"closed": closedTop.name, "ancestor": closedBelow.name}).Debug("implicit close by parent")
			return []ParseEvent{
				&CloseEvent{Name: closedTop.name, SelfClosing: false},
				&CloseEvent{Name: closedBelow.name, SelfClosing: false},
			}
		}
	}

	// No matching open frame anywhere a single implicit-close rule
	// could reach: silently drop the closing tag.
	return nil
}

// drain flushes the stack at end of input, deepest child first, so
// the output stays well-nested.
func (p *Parser) drain() []ParseEvent {
	var events []ParseEvent
	for len(p.stack) > 0 {
		frame := p.pop()
		events = append(events, &CloseEvent{Name: frame.name, SelfClosing: false})
		p.log.WithField("closed", frame.name).Debug("implicit close by drain")
	}
	return events
}
