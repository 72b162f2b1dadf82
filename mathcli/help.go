package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "mode", "modes":
		pterm.Info.Println("Output modes")
		pterm.Println(`
	html    HTML fragment, upright text as <span class="math-normal">,
	        symbols as <img src="…/name.png"/>
	print   tag markup for print production; elements are renamed by
	        context (sup2, subsup, rsub, bsup, …) and symbols become
	        placement markers ◆→math:name.eps←◆
	`)
	case "table", "tables":
		pterm.Info.Println("Symbol tables")
		pterm.Println(`
	:table literals    characters and escaped characters, e.g. \{ or <
	:table commands    backslash commands, e.g. \log or \alpha
	:table images      commands rendered as symbol images, e.g. \sum
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Enter a math expression to convert it, e.g.   k= \log_2 m
	Commands start with a colon:
	:mode [html|print]   show or set the output mode
	:runes               list the characters of the last output by name
	:table <name>        list a symbol table
	:help [topic]        help on topics "mode" and "table"
	:quit                leave the CLI
	`)
	}
}
