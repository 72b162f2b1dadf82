/*
Package mathmark converts LaTeX math fragments into HTML and into tag markup
for print production.

Math fragments are single-line expressions as they appear in technical prose,
for example

	x_{n}x_{n-1}\cdots x_{0}
	k= \log_2 m
	\mbox{a and b 1}

There is no full TeX grammar behind the conversion: a fixed set of symbols and
commands is recognized (see package symbols), scripts, boxes and a top-bar
accent are expanded, and everything else is rejected. A conversion either
succeeds completely or fails with a *ConversionError; partial output is never
produced.

For expressions which cannot be converted (or converted well), a table of
hand-made renditions may be provided. See package overrides.

# Packages

▪︎ symbols holds the fixed symbol and command tables.

▪︎ texparse converts an expression into intermediate tag markup.

▪︎ markup renders intermediate tag markup as HTML or as a print production tree.

▪︎ overrides loads hand-made renditions.

Converter ties these together.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mathmark

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mathmark'
func tracer() tracing.Trace {
	return tracing.Select("mathmark")
}
