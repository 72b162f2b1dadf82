package texparse

// expand rewrites `^`, `_` and `\bar` constructs into sup, sub and bar tokens.
//
//	^{…}  →  sup        _{…}  →  sub        \bar{…}  →  bar
//	^x    →  sup(x)     _x    →  sub(x)     (x a single ASCII letter or digit)
//
// The bracketed form takes priority, i.e., `x^{12}` is a single superscript,
// while `x^12` is a superscript "1" followed by "2". Bodies are expanded
// recursively, so `x^{y^{z}}` results in a sup within a sup.
//
// If accents is false, `\bar` is not expanded; bodies of accents are expanded
// this way. Empty groups never match. A `^` or `_` without a valid operand
// remains a literal character.
func expand(tokens []Token, accents bool) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		var next Token
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		switch {
		case t.is("^") || t.is("_"):
			kind := KindSup
			if t.Text == "_" {
				kind = KindSub
			}
			if isBody(next) {
				out = append(out, Token{Kind: kind, ID: next.ID, Children: expand(next.Children, accents)})
				i++
				continue
			}
			if next.Kind == KindText && isAlnum(next.Text) {
				out = append(out, Token{Kind: kind, Children: []Token{next}})
				i++
				continue
			}
		case accents && t.Kind == KindCommand && t.Text == "bar" && isBody(next):
			out = append(out, Token{Kind: KindBar, ID: next.ID, Children: expand(next.Children, false)})
			i++
			continue
		case len(t.Children) > 0:
			t.Children = expand(t.Children, accents)
		}
		out = append(out, t)
	}
	return out
}

// isBody checks if t is a non-empty bracket group.
func isBody(t Token) bool {
	return t.Kind == KindGroup && len(t.Children) > 0
}

func isAlnum(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
