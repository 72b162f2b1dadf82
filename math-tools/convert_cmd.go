package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mathmark"
	"github.com/npillmayer/mathmark/markup"
	"github.com/thatisuday/commando"
)

func runHTMLCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conv := mustConverter(flags)
	exprs := expressions(args["expr"], optionalFlag(flags["input"]))
	results := conv.ConvertAll(exprs, mathmark.HTML)
	writeResults(os.Stdout, results)
	exitStatus(report(results), len(results))
}

func runPrintCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conv := mustConverter(flags)
	exprs := expressions(args["expr"], optionalFlag(flags["input"]))
	if !mustFlagBool(flags["indent"], "indent") {
		results := conv.ConvertAll(exprs, mathmark.Print)
		writeResults(os.Stdout, results)
		exitStatus(report(results), len(results))
		return
	}
	results := make([]mathmark.Result, len(exprs))
	for i, expr := range exprs {
		results[i].Expression = expr
		doc, err := conv.ToPrint(expr)
		if err == nil {
			doc.Indent(2)
			results[i].Output, err = markup.WritePrint(doc)
		}
		results[i].Err = err
	}
	writeResults(os.Stdout, results)
	exitStatus(report(results), len(results))
}

// writeResults writes one output per result. A failed conversion yields an
// empty line, so that line n of a batch output belongs to expression n.
func writeResults(w io.Writer, results []mathmark.Result) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintln(w)
		case strings.HasSuffix(r.Output, "\n"):
			fmt.Fprint(w, r.Output)
		default:
			fmt.Fprintln(w, r.Output)
		}
	}
}

// exitStatus exits with status 2 if any conversion of a batch failed.
func exitStatus(failed, total int) {
	tracer().Infof("%d of %d expressions converted", total-failed, total)
	if failed > 0 {
		os.Exit(2)
	}
}
