package texparse

import "github.com/npillmayer/mathmark/symbols"

var boxCommands = map[string]BoxKind{
	"mbox":   BoxMBox,
	"rm":     BoxRoman,
	"text":   BoxRoman,
	"textrm": BoxRoman,
	"mathrm": BoxRoman,
	"mathit": BoxItalic,
	"bm":     BoxBold,
	"mathbm": BoxBold,
	"mathbf": BoxBold,
}

// boxStore holds the rendered contents of boxes for one conversion.
// Boxes of all kinds share a single counter, starting at 1.
type boxStore struct {
	boxes [][]Token
}

func (bs *boxStore) store(content []Token) int {
	bs.boxes = append(bs.boxes, content)
	return len(bs.boxes)
}

func (bs *boxStore) lookup(n int) []Token {
	assert(n > 0 && n <= len(bs.boxes), "box reference out of range")
	return bs.boxes[n-1]
}

// Len returns the number of boxes stored.
func (bs *boxStore) Len() int {
	return len(bs.boxes)
}

// extractBoxes replaces every box command with a (non-empty) bracket group
// argument by a box reference. The box contents are rendered once and stored
// in the box store of the conversion: white space inside a box is significant,
// and characters inside a box are not subject to restoration of the
// surrounding text.
//
// Boxes are processed innermost first, so nested boxes of any kind resolve
// from inner to outer.
func (st *parseState) extractBoxes(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind == KindCommand && i+1 < len(tokens) && isBody(tokens[i+1]) {
			if kind, ok := boxCommands[t.Text]; ok {
				content := protectBlanks(st.extractBoxes(tokens[i+1].Children))
				tag := kind.tag()
				rendered := []Token{markup("<" + tag + ">")}
				rendered = append(rendered, st.restore(content)...)
				rendered = append(rendered, markup("</"+tag+">"))
				n := st.boxes.store(rendered)
				tracer().Debugf("stored box %s:%d = %s", kind, n, Dump(rendered))
				out = append(out, Token{Kind: KindBox, Box: kind, Index: n})
				i++
				continue
			}
		}
		if len(t.Children) > 0 {
			t.Children = st.extractBoxes(t.Children)
		}
		out = append(out, t)
	}
	return out
}

// protectBlanks turns every white space within tokens into a protected space,
// including escapes which resolve to white space.
func protectBlanks(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		switch t.Kind {
		case KindBlank:
			t = spaceToken
		case KindEscape:
			if v, ok := symbols.Resolve(t.Table, t.Index); ok && v.Blank {
				t = spaceToken
			}
		}
		if len(t.Children) > 0 {
			t.Children = protectBlanks(t.Children)
		}
		out[i] = t
	}
	return out
}
