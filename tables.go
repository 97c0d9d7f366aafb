package html

import (
	"strings"

	"github.com/pkg/errors"
)

// voidElements never have content or a closing tag; the parser always
// emits Open immediately followed by Close{SelfClosing: true} for
// them, regardless of whether the source used "/>".
var voidElements = setOf(
	"area", "base", "br", "col", "command", "embed", "hr", "img",
	"input", "keygen", "link", "meta", "param", "source", "track", "wbr",
)

// closedByParent lists tags whose open frame is auto-closed when a
// closing tag for their parent is encountered two levels up the
// stack (see closedBySibling's sibling counterpart for the other
// implicit-close family).
var closedByParent = setOf(
	"p", "li", "dd", "rb", "rt", "rtc", "rp", "optgroup", "option",
	"tbody", "tfoot", "tr", "td", "th",
)

// closedBySibling maps a tag T to the set of tags whose opening
// implicitly closes an open T sitting on top of the stack. Lifted
// verbatim from the HTML5 optional-tag rules.
var closedBySibling = map[string]map[string]struct{}{
	"p": setOf(
		"address", "article", "aside", "blockquote", "div", "dl",
		"fieldset", "footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hgroup", "hr", "main", "nav", "ol", "p", "pre",
		"section", "table", "ul",
	),
	"li":       setOf("li"),
	"dt":       setOf("dt", "dd"),
	"dd":       setOf("dt", "dd"),
	"rb":       setOf("rb", "rt", "rtc", "rp"),
	"rt":       setOf("rb", "rt", "rtc", "rp"),
	"rtc":      setOf("rb", "rtc", "rp"),
	"rp":       setOf("rb", "rt", "rtc", "rp"),
	"optgroup": setOf("optgroup"),
	"option":   setOf("option", "optgroup"),
	"thead":    setOf("tbody", "tfoot"),
	"tbody":    setOf("tbody", "tfoot"),
	"tfoot":    setOf("tbody"),
	"tr":       setOf("tr"),
	"td":       setOf("td", "th"),
	"th":       setOf("td", "th"),
}

func setOf(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func isVoidElement(name string) bool {
	_, ok := voidElements[strings.ToLower(name)]
	return ok
}

func isClosedByParent(name string) bool {
	_, ok := closedByParent[strings.ToLower(name)]
	return ok
}

// closesSibling reports whether opening incomingName should implicitly
// close an openName element sitting on top of the stack. Both names
// are lowercased before the lookup, so "<P><DIV>" closes "P" exactly
// as "<p><div>" closes "p" — a deliberate normalization rather than a
// reproduction of the source material's latent case-sensitivity quirk;
// see DESIGN.md.
func closesSibling(openName, incomingName string) bool {
	set, ok := closedBySibling[strings.ToLower(openName)]
	if !ok {
		return false
	}
	_, ok = set[strings.ToLower(incomingName)]
	return ok
}

func init() {
	if err := validateStaticTables(); err != nil {
		panic(errors.Wrap(err, "html: static table validation failed"))
	}
}

// validateStaticTables guards against a future edit introducing a
// mixed-case entry into one of the tables above, which would silently
// break every lookup that lowercases its input before comparing.
func validateStaticTables() error {
	for name := range voidElements {
		if name != strings.ToLower(name) {
			return errors.Errorf("void element table contains non-lowercase entry %q", name)
		}
	}
	for name := range closedByParent {
		if name != strings.ToLower(name) {
			return errors.Errorf("closed-by-parent table contains non-lowercase entry %q", name)
		}
	}
	for parent, set := range closedBySibling {
		if parent != strings.ToLower(parent) {
			return errors.Errorf("closed-by-sibling table key %q is not lowercase", parent)
		}
		for child := range set {
			if child != strings.ToLower(child) {
				return errors.Errorf("closed-by-sibling table entry %q -> %q is not lowercase", parent, child)
			}
		}
	}
	return nil
}
