package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathmark/symbols"
	"github.com/pterm/pterm"
)

var tableNames = map[string]symbols.TableKind{
	"literals": symbols.Literals,
	"commands": symbols.Commands,
	"images":   symbols.Images,
}

// tableOp lists the entries of a symbol table.
func tableOp(intp *Intp, op *Op) (error, bool) {
	kind, ok := tableNames[strings.ToLower(op.arg)]
	if !ok {
		return fmt.Errorf("no symbol table '%s', use literals, commands or images", op.arg), false
	}
	data := [][]string{
		{"Index", "Key", "Rendition"},
	}
	for i, n := 0, symbols.Len(kind); i < n; i++ {
		e, _ := symbols.At(kind, i)
		data = append(data, []string{fmt.Sprintf("%d", i), e.Key, describe(e.Value)})
	}
	tracer().Infof("table %s has %d entries", kind, symbols.Len(kind))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func describe(v symbols.Value) string {
	switch {
	case v.Blank:
		return "(blank)"
	case v.Markup == "" && v.Space:
		return "(space)"
	case v.Space:
		return v.Markup + " (space)"
	}
	return v.Markup
}
