/*
Package symbols holds the static escape tables for LaTeX math fragments.

There are three tables:

▪︎ Literals: single- or two-character sequences such as `\{`, `<` or `=`, which
have to be shielded from the rest of the pipeline before any structural parsing
takes place.

▪︎ Commands: backslash-commands such as `\log`, `\times` or Greek letter names,
mapped to their final markup.

▪︎ Images: backslash-commands without a character rendition. They map to a
symbol-image token `<img>Name</img>`, which output renderers resolve to an
external image reference.

Table order is stable and significant: clients refer to entries by index.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package symbols

import (
	"strings"
	"unicode/utf8"
)

// TableKind identifies one of the escape tables.
type TableKind uint8

const (
	Literals TableKind = iota // literal-character escapes
	Commands                  // backslash-command escapes
	Images                    // backslash-commands rendered as symbol images
)

func (k TableKind) String() string {
	switch k {
	case Literals:
		return "BSESC"
	case Commands:
		return "CMESC"
	case Images:
		return "IMGESC"
	}
	return "UNKNOWN"
}

// Value is the replacement target of a table entry.
//
// Markup is pre-rendered output markup and may be empty. If Space is set, the
// markup is followed by a protected space. A Blank value renders as incidental
// white space, which is dropped outside of boxes.
type Value struct {
	Markup string
	Space  bool
	Blank  bool
}

// Entry is a key/value pair of an escape table.
type Entry struct {
	Key   string
	Value Value
}

func r(s string) Value   { return Value{Markup: "<r>" + s + "</r>"} }
func lit(s string) Value { return Value{Markup: s} }
func img(s string) Value { return Value{Markup: "<img>" + s + "</img>"} }
func rsp(s string) Value { return Value{Markup: "<r>" + s + "</r>", Space: true} }
func protected() Value   { return Value{Space: true} }
func blank() Value       { return Value{Blank: true} }

var literalTable = []Entry{
	{`\{`, r("{")},
	{`\}`, r("}")},
	{`\｝`, r("}")},
	{`\_`, r("_")},
	{`\|`, r("|")},
	{`\^`, r("^")},
	{`\%`, r("%")},
	{`\$`, r("$")},
	{`\#`, r("#")},
	{`\;`, protected()},
	{`\<`, lit("◆→&lt;←◆")},
	{`\>`, blank()},
	{`<`, r("＜")},
	{`>`, r("＞")},
	{`+`, r("＋")},
	{`-`, r("−")},
	{`*`, r("＊")},
	{`/`, r("/")},
	{`=`, r("＝")},
	{"``", r("'")},
	{`''`, r(`"`)},
	{`, `, rsp(",")},
}

var commandTable = []Entry{
	{`\log`, r("log")},
	{`\exp`, r("exp")},
	{`\sin`, r("sin")},
	{`\cos`, r("cos")},
	{`\tan`, r("tan")},
	{`\times`, r("×")},
	{`\dots`, r("...")},
	{`\cdots`, r("…")},
	{`\cdot`, r("・")},
	{`\equiv`, r("≡")},
	{`\leq`, r("≦")},
	{`\geq`, r("≧")},
	{`\quad`, r("　")},
	{`\pi`, lit("π")},
	{`\sigma`, lit("σ")},
	{`\theta`, lit("θ")},
	{`\alpha`, lit("α")},
	{`\beta`, lit("Β")},
	{`\gamma`, lit("γ")},
	{`\varGamma`, lit("Γ")},
	{`\delta`, lit("Δ")},
	{`\Delta`, lit("Δ")},
	{`\epsilon`, lit("ε")},
	{`\varepsilon`, lit("ε")},
	{`\kappa`, lit("κ")},
	{`\lambda`, lit("λ")},
	{`\mu`, lit("μ")},
	{`\rho`, lit("ρ")},
	{`\tau`, lit("τ")},
	{`\partial`, lit("∂")},
	{`\phi`, lit("φ")},
	{`\Phi`, lit("φ")},
	{`\varPhi`, lit("φ")},
	{`\approx`, r("≈")},
	{`\simeq`, r("≃")},
	{`\fallingdotseq`, r("≒")},
	{`\varpropto`, r("∝")},
	{`\infty`, r("∞")},
	{`\ `, protected()},
}

var imageTable = []Entry{
	{`\Rightarrow`, img("Rightarrow")},
	{`\Leftarrow`, img("Leftarrow")},
	{`\Leftrightarrow`, img("Leftrightarrow")},
	{`\nabla`, img("nabla")},
	{`\sum`, img("sum")},
	{`\prod`, img("prod")},
	{`\int`, img("int")},
	{`\oint`, img("oint")},
}

var commandIndex = func() map[string]ref {
	m := make(map[string]ref, len(commandTable)+len(imageTable))
	for i, e := range commandTable {
		m[e.Key] = ref{Commands, i}
	}
	for i, e := range imageTable {
		m[e.Key] = ref{Images, i}
	}
	return m
}()

type ref struct {
	kind  TableKind
	index int
}

func table(kind TableKind) []Entry {
	switch kind {
	case Literals:
		return literalTable
	case Commands:
		return commandTable
	case Images:
		return imageTable
	}
	return nil
}

// Len returns the number of entries of a table.
func Len(kind TableKind) int {
	return len(table(kind))
}

// At returns entry number index of a table.
func At(kind TableKind, index int) (Entry, bool) {
	t := table(kind)
	if index < 0 || index >= len(t) {
		return Entry{}, false
	}
	return t[index], true
}

// Resolve returns the replacement value for a table reference.
// It is the inverse of the lookup functions.
func Resolve(kind TableKind, index int) (Value, bool) {
	e, ok := At(kind, index)
	return e.Value, ok
}

// LookupLiteral checks if s starts with a literal-escape key. If more than
// one key matches, the longest one wins. width is the byte length of the
// matched key.
func LookupLiteral(s string) (index, width int, ok bool) {
	for i, e := range literalTable {
		if len(e.Key) > width && strings.HasPrefix(s, e.Key) {
			index, width, ok = i, len(e.Key), true
		}
	}
	return
}

// LookupCommand finds a backslash-command, given with its leading backslash
// (e.g. `\sin`). Commands and symbol images share one namespace.
//
// Clients are expected to pass the maximal run of letters following the
// backslash. This enforces the word-boundary rule: `\sin` will not fire inside
// `\sinh`.
func LookupCommand(name string) (TableKind, int, bool) {
	if ref, ok := commandIndex[name]; ok {
		return ref.kind, ref.index, true
	}
	return Commands, -1, false
}

// IsLetter reports whether r may be part of a command name.
func IsLetter(r rune) bool {
	return r < utf8.RuneSelf && ('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
}
