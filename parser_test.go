package html

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, src string) []ParseEvent {
	t.Helper()
	var out []ParseEvent
	for ev := range Parse(src) {
		out = append(out, ev)
	}
	return out
}

// eventSummary renders an event the same way spec scenarios describe
// them: type,name,attrs,selfClosing.
func eventSummary(ev ParseEvent) string {
	switch e := ev.(type) {
	case *OpenEvent:
		return "open," + e.Name + "," + mapSummary(e.Attributes) + "," + boolSummary(e.SelfClosing)
	case *CloseEvent:
		return "close," + e.Name + "," + boolSummary(e.SelfClosing)
	case *TextEvent:
		return "text," + e.Text
	case *CommentEvent:
		return "comment," + e.Text
	default:
		return "unknown"
	}
}

func mapSummary(a *Attributes) string {
	if a == nil || a.Len() == 0 {
		return "{}"
	}
	out := "{"
	first := true
	a.Range(func(name, value string) bool {
		if !first {
			out += ","
		}
		first = false
		out += name + "=" + value
		return true
	})
	return out + "}"
}

func boolSummary(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func summaries(t *testing.T, src string) []string {
	t.Helper()
	var out []string
	for _, ev := range collectEvents(t, src) {
		out = append(out, eventSummary(ev))
	}
	return out
}

func TestParseVoidElement(t *testing.T) {
	require.Equal(t, []string{
		"open,br,{},true",
		"close,br,true",
	}, summaries(t, "<br>"))
}

func TestParseDrainsUnclosedElement(t *testing.T) {
	require.Equal(t, []string{
		"open,p,{},false",
		"text,hello",
		"close,p,false",
	}, summaries(t, "<p>hello"))
}

func TestParseSiblingCloseOnRepeatedLi(t *testing.T) {
	require.Equal(t, []string{
		"open,ul,{},false",
		"open,li,{},false",
		"close,li,false",
		"open,li,{},false",
		"close,li,false",
		"close,ul,false",
		"text,a",
	}, summaries(t, "<ul><li><li></ul>a"))
}

func TestParseSiblingCloseOfPByDiv(t *testing.T) {
	require.Equal(t, []string{
		"open,p,{},false",
		"close,p,false",
		"open,div,{},false",
		"close,div,false",
	}, summaries(t, "<p><div>"))
}

func TestParseScriptRawTextAndDroppedSecondCloser(t *testing.T) {
	require.Equal(t, []string{
		`open,script,{},false`,
		`text,alert("`,
		`close,script,false`,
		`text,")`,
	}, summaries(t, `<script>alert("</script>")</script>`))
}

func TestParseUnterminatedComment(t *testing.T) {
	require.Equal(t, []string{
		"comment,x-- >",
	}, summaries(t, "<!--x-- >"))
}

func TestParseQuotedAttributeWithEmbeddedQuotes(t *testing.T) {
	events := collectEvents(t, `<br att='yes, "no", yes'>`)
	require.Len(t, events, 2)

	open, ok := events[0].(*OpenEvent)
	require.True(t, ok)
	require.Equal(t, "br", open.Name)
	require.True(t, open.SelfClosing)
	v, ok := open.Attributes.Get("att")
	require.True(t, ok)
	require.Equal(t, `yes, "no", yes`, v)

	closeEv, ok := events[1].(*CloseEvent)
	require.True(t, ok)
	require.Equal(t, "br", closeEv.Name)
	require.True(t, closeEv.SelfClosing)
}

func TestParseImplicitCloseByParentTwoLevelsDeep(t *testing.T) {
	// </table> closes a dangling <tr> (closed-by-parent) whose parent
	// frame is the <table> two levels up the stack.
	require.Equal(t, []string{
		"open,table,{},false",
		"open,tr,{},false",
		"close,tr,false",
		"close,table,false",
	}, summaries(t, "<table><tr></table>"))
}

func TestParseClosingTagWithNoMatchingOpenIsDropped(t *testing.T) {
	require.Equal(t, []string{
		"text,hi",
	}, summaries(t, "hi</br>"))
}

func TestParseSelfClosingSyntaxOnNonVoidElement(t *testing.T) {
	require.Equal(t, []string{
		"open,custom,{},true",
		"close,custom,true",
	}, summaries(t, "<custom/>"))
}

func TestParseDuplicateAttributeLastWins(t *testing.T) {
	events := collectEvents(t, `<script src='123' src='456'></script>`)
	open := events[0].(*OpenEvent)
	require.Equal(t, 1, open.Attributes.Len())
	v, _ := open.Attributes.Get("src")
	require.Equal(t, "456", v)
}

func TestParseMixedCaseSiblingCloseIsNormalized(t *testing.T) {
	// This rewrite normalizes table lookups to lowercase (see
	// DESIGN.md), so "<P><DIV>" triggers the same sibling-close
	// "<p><div>" would, while the emitted events keep source case.
	require.Equal(t, []string{
		"open,P,{},false",
		"close,P,false",
		"open,DIV,{},false",
		"close,DIV,false",
	}, summaries(t, "<P><DIV>"))
}

func TestParseEmptyInput(t *testing.T) {
	require.Empty(t, collectEvents(t, ""))
}

func TestParseBalancedOutputInvariant(t *testing.T) {
	inputs := []string{
		"<ul><li><li></ul>a",
		"<p><div>",
		"<table><tr><td>x</table>",
		"<div><span><b>hi</div>",
	}

	for _, src := range inputs {
		var depth int
		var maxDepth int
		for _, ev := range collectEvents(t, src) {
			switch e := ev.(type) {
			case *OpenEvent:
				if !e.SelfClosing {
					depth++
					if depth > maxDepth {
						maxDepth = depth
					}
				}
			case *CloseEvent:
				if !e.SelfClosing {
					depth--
				}
			}
		}
		require.Zero(t, depth, "every Open must be balanced by a Close in %q", src)
	}
}

func TestParseNeverEmitsAdjacentText(t *testing.T) {
	events := collectEvents(t, "hello <br> world < oops <p>more")
	for i := 1; i < len(events); i++ {
		_, prevIsText := events[i-1].(*TextEvent)
		_, curIsText := events[i].(*TextEvent)
		require.False(t, prevIsText && curIsText)
	}
}

func TestParseSnapshotScenarios(t *testing.T) {
	scenarios := map[string]string{
		"nested_lists": dedent.Dedent(`
			<ul>
				<li>one
				<li>two
			</ul>
		`),
		"malformed_bracket": "price < 5 and > 2",
		"mixed_attributes":  `<input type=text value='it''s fine' disabled>`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			snaps.WithConfig(
				snaps.Filename(name),
				snaps.Dir("__snapshots__"),
			).MatchSnapshot(t, summaries(t, src))
		})
	}
}
