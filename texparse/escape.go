package texparse

import (
	"unicode/utf8"

	"github.com/npillmayer/mathmark/symbols"
)

// escape converts an expression into a flat token stream. Table-matched
// substrings become escape references, unknown backslash commands become
// command tokens, everything else is copied rune by rune.
//
// At a backslash, the literal-escape table takes precedence over the command
// table (`\{` is a literal escape, not a command).
func escape(s string) []Token {
	tokens := make([]Token, 0, len(s))
	for i := 0; i < len(s); {
		if inx, w, ok := symbols.LookupLiteral(s[i:]); ok {
			tokens = append(tokens, Token{Kind: KindEscape, Table: symbols.Literals, Index: inx})
			i += w
			continue
		}
		r, w := utf8.DecodeRuneInString(s[i:])
		if r == '\\' {
			j := i + 1
			for j < len(s) && symbols.IsLetter(rune(s[j])) {
				j++
			}
			if j == i+1 && j < len(s) && s[j] == ' ' { // explicit space `\ `
				j++
			}
			if kind, inx, ok := symbols.LookupCommand(s[i:j]); ok {
				tokens = append(tokens, Token{Kind: KindEscape, Table: kind, Index: inx})
				i = j
				continue
			}
			if j > i+1 && s[j-1] != ' ' {
				tokens = append(tokens, command(s[i+1:j]))
				i = j
				continue
			}
		}
		switch r {
		case ' ', '\t', '\n', '\r':
			tokens = append(tokens, blankToken)
		default:
			tokens = append(tokens, text(s[i:i+w]))
		}
		i += w
	}
	return tokens
}

// unescape replaces every escape reference, at any nesting level, by its table
// value. It is the inverse of escape. Running it on a stream without escape
// references returns an equal stream.
func unescape(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != KindEscape {
			if len(t.Children) > 0 {
				t.Children = unescape(t.Children)
			}
			out = append(out, t)
			continue
		}
		v, ok := symbols.Resolve(t.Table, t.Index)
		assert(ok, "escape reference out of table range")
		out = append(out, resolved(v)...)
	}
	return out
}

// resolved converts a table value into tokens.
func resolved(v symbols.Value) []Token {
	if v.Blank {
		return []Token{blankToken}
	}
	var tokens []Token
	if v.Markup != "" {
		tokens = append(tokens, markup(v.Markup))
	}
	if v.Space {
		tokens = append(tokens, spaceToken)
	}
	return tokens
}
