/*
Package texparse rewrites a restricted subset of LaTeX math into an intermediate
tag markup.

The input is a single-line math fragment, such as `k= \log_2 m`. The output is a
small XML-like fragment using the tags `i`, `r` (normal style), `b`, `sup`,
`sub`, `ibar` (italic with top bar) and `img` (symbol image). Package `markup`
transforms this fragment further into HTML or into a tag tree for print
production.

The package API is centered around [Parse]:

	s, err := texparse.Parse(`x^{y^{z}}`)
	// s == "<i>x<sup>y<sup>z</sup></sup></i>"

# Pipeline

Every call of [Parse] runs a fixed sequence of stages over a token stream
([Token]). Tokens are tagged values: input text can never be mistaken for
an intermediate encoding.

▪︎ escape: literal escapes (`\{`, `<`, `=`, …) and known commands (`\log`, `\pi`,
…) are replaced by references into the tables of package `symbols`.

▪︎ bracket numbering: every `{…}` pair gets a unique id; the stream is then folded
into a tree of bracket groups.

▪︎ expansion: `^`, `_` and `\bar` are turned into sup, sub and accent nodes,
recursing into nested groups.

▪︎ box extraction: the contents of `\mbox`, `\mathrm` (and friends), `\mathit` and
`\mathbf` (and friends) are rendered once and moved to a per-call box store.

▪︎ restoration: runs of as-is characters are wrapped in normal style, boxes are
spliced back in, escapes are resolved, white space is normalized.

A fragment which leaves any construct unresolved is rejected with a
[ConversionError], carrying the original expression.

All state of a conversion is local to one call. Parse is safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package texparse

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the texparse package namespace.
func tracer() tracing.Trace {
	return tracing.Select("mathmark.parse")
}

// errParse wraps a message as an internal parsing error.
func errParse(x string) error {
	return fmt.Errorf("math expression parsing: %s", x)
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
