package texparse

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathmark/symbols"
)

// Kind is the type tag of a token.
type Kind uint8

const (
	KindText    Kind = iota // one literal rune
	KindBlank               // incidental white space, carries no meaning
	KindSpace               // protected space
	KindCommand             // unresolved backslash command
	KindEscape              // reference into a symbol table
	KindOpen                // opening bracket with id
	KindClose               // closing bracket with id
	KindGroup               // balanced bracket group with id
	KindSup                 // superscript
	KindSub                 // subscript
	KindBar                 // top bar accent
	KindBox                 // reference into the box store
	KindMarkup              // rendered markup, opaque to every stage
)

var kindNames = [...]string{"TEXT", "BLANK", "SP", "CMD", "ESC", "BO", "BC", "GROUP",
	"SUP", "SUB", "BAR", "BOX", "MARKUP"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// BoxKind identifies the style of a box command.
type BoxKind uint8

const (
	BoxMBox   BoxKind = iota // \mbox
	BoxRoman                 // \rm, \text, \textrm, \mathrm
	BoxItalic                // \mathit
	BoxBold                  // \bm, \mathbm, \mathbf
)

func (b BoxKind) String() string {
	switch b {
	case BoxMBox:
		return "MBOX"
	case BoxRoman:
		return "MATHRM"
	case BoxItalic:
		return "MATHIT"
	case BoxBold:
		return "MATHBM"
	}
	return "UNKNOWN"
}

// tag is the markup element wrapping the contents of a box.
func (b BoxKind) tag() string {
	switch b {
	case BoxItalic:
		return "i"
	case BoxBold:
		return "b"
	}
	return "r"
}

// Token is an item of the intermediate representation. Which fields are
// meaningful depends on Kind:
//
//	KindText      Text holds the rune
//	KindCommand   Text holds the command name without backslash
//	KindMarkup    Text holds the markup
//	KindEscape    Table and Index
//	KindOpen/KindClose/KindGroup   ID
//	KindBox       Box and Index
//
// Groups, sup, sub and bar tokens have Children.
type Token struct {
	Kind     Kind
	Text     string
	ID       int
	Table    symbols.TableKind
	Index    int
	Box      BoxKind
	Children []Token
}

func text(s string) Token    { return Token{Kind: KindText, Text: s} }
func markup(s string) Token  { return Token{Kind: KindMarkup, Text: s} }
func command(s string) Token { return Token{Kind: KindCommand, Text: s} }

var blankToken = Token{Kind: KindBlank}
var spaceToken = Token{Kind: KindSpace}

// is checks for a text token holding exactly s.
func (t Token) is(s string) bool {
	return t.Kind == KindText && t.Text == s
}

func (t Token) String() string {
	switch t.Kind {
	case KindText, KindMarkup:
		return t.Text
	case KindBlank:
		return " "
	case KindSpace:
		return "⟨SP⟩"
	case KindCommand:
		return `\` + t.Text
	case KindEscape:
		return fmt.Sprintf("⟨%s:%d⟩", t.Table, t.Index)
	case KindOpen, KindClose:
		return fmt.Sprintf("⟨%s:%d⟩", t.Kind, t.ID)
	case KindBox:
		return fmt.Sprintf("⟨%s:%d⟩", t.Box, t.Index)
	}
	return fmt.Sprintf("%s{%s}", t.Kind, Dump(t.Children))
}

// Dump returns a debugging representation of a token sequence.
func Dump(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.String())
	}
	return sb.String()
}
