package texparse

import (
	"fmt"
	"strings"
)

// isAsIs checks for characters which are set upright, as they are:
// digits, punctuation and brackets.
func isAsIs(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return '0' <= c && c <= '9' || strings.IndexByte(":;()[]{}!,.", c) >= 0
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// protectCommas inserts a protected space after every literal comma.
func protectCommas(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if len(t.Children) > 0 {
			t.Children = protectCommas(t.Children)
		}
		out = append(out, t)
		if t.is(",") {
			out = append(out, spaceToken)
		}
	}
	return out
}

// restore flattens a token tree into markup. Maximal runs of as-is characters
// are wrapped in normal style, other characters are escaped for XML. Box
// references are replaced by the stored box contents. Sup, sub and bar tokens
// become elements.
//
// Escape references, white space, unknown commands and bracket groups are
// passed through; the latter two are residue and will be rejected by finalize.
func (st *parseState) restore(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, markup("<r>"+run.String()+"</r>"))
			run.Reset()
		}
	}
	for _, t := range tokens {
		if t.Kind == KindText && isAsIs(t.Text) {
			run.WriteString(t.Text)
			continue
		}
		flush()
		switch t.Kind {
		case KindText:
			out = append(out, markup(xmlEscaper.Replace(t.Text)))
		case KindSup:
			out = st.element(out, "sup", t.Children)
		case KindSub:
			out = st.element(out, "sub", t.Children)
		case KindBar:
			out = st.element(out, "ibar", t.Children)
		case KindBox:
			out = append(out, st.boxes.lookup(t.Index)...)
		case KindGroup:
			t.Children = st.restore(t.Children)
			out = append(out, t)
		default:
			out = append(out, t)
		}
	}
	flush()
	return out
}

func (st *parseState) element(out []Token, tag string, children []Token) []Token {
	out = append(out, markup("<"+tag+">"))
	out = append(out, st.restore(children)...)
	return append(out, markup("</"+tag+">"))
}

var collapser = strings.NewReplacer("</r><r>", "", "</i><i>", "")

// finalize renders restored tokens to a string. Adjacent closing/opening tags
// of the same style are merged within each stretch of markup not interrupted by
// white space. Incidental white space is dropped, protected spaces become
// space characters.
//
// finalize returns an error for residue: unknown commands and bracket groups
// not consumed by any construct.
func finalize(tokens []Token) (string, error) {
	var out, segment strings.Builder
	flush := func() {
		out.WriteString(collapser.Replace(segment.String()))
		segment.Reset()
	}
	for _, t := range tokens {
		switch t.Kind {
		case KindMarkup:
			segment.WriteString(t.Text)
		case KindBlank:
			flush()
		case KindSpace:
			flush()
			out.WriteByte(' ')
		case KindCommand:
			return "", fmt.Errorf("unknown command \\%s", t.Text)
		case KindGroup:
			return "", fmt.Errorf("unresolved bracket group #%d", t.ID)
		default:
			return "", errParse(fmt.Sprintf("unexpected token %s after restore", t.Kind))
		}
	}
	flush()
	return out.String(), nil
}
