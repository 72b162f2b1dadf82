package main

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/mathmark"
	"github.com/npillmayer/mathmark/markup"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// convert converts an expression in the current output mode and displays the
// result.
func (intp *Intp) convert(expr string) {
	var out string
	var err error
	switch intp.mode {
	case mathmark.Print:
		out, err = intp.printTree(expr)
	default:
		out, err = intp.conv.ToHTML(expr)
	}
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	intp.last = out
	pterm.Println(out)
}

func (intp *Intp) printTree(expr string) (string, error) {
	doc, err := intp.conv.ToPrint(expr)
	if err != nil {
		return "", err
	}
	doc.Indent(2)
	return markup.WritePrint(doc)
}

// runesOp lists the non-ASCII characters of the last output by name.
func runesOp(intp *Intp, op *Op) (error, bool) {
	if intp.last == "" {
		return fmt.Errorf("nothing converted yet"), false
	}
	data := [][]string{
		{"Char", "Code", "Name"},
	}
	seen := make(map[rune]bool)
	for _, r := range intp.last {
		if r <= unicode.MaxASCII || seen[r] {
			continue
		}
		seen[r] = true
		data = append(data, []string{string(r), fmt.Sprintf("U+%04X", r), runenames.Name(r)})
	}
	if len(data) == 1 {
		pterm.Println("Output is plain ASCII")
		return nil, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
