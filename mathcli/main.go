package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathmark"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mathmark'
func tracer() tracing.Trace {
	return tracing.Select("mathmark")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.mathmark":           "Info",
		"trace.mathmark.parse":     "Error",
		"trace.mathmark.markup":    "Error",
		"trace.mathmark.overrides": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	overrideFile := flag.String("overrides", "", "Override file to load")
	images := flag.String("images", "", "Location of symbol images")
	mode := flag.String("mode", "html", "Output mode [html|print]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the math markup CLI")
	//
	// set up REPL
	repl, err := readline.New("math > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// set up the converter
	conf[mathmark.ConfOverrides] = *overrideFile
	conf[mathmark.ConfImages] = *images
	if err := intp.setup(conf, *mode); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("mathmark.parse").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("mathmark.markup").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	conv *mathmark.Converter
	repl *readline.Instance
	mode mathmark.Mode
	last string // output of the last conversion
}

func (intp *Intp) setup(conf testconfig.Conf, mode string) (err error) {
	if intp.mode, err = mathmark.ParseMode(mode); err != nil {
		return
	}
	intp.conv, err = mathmark.NewFromConfig(conf)
	return
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	return fmt.Sprintf("( mode=%s )", intp.mode)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.convert(line)
			continue
		}
		cmd, err := intp.parseCommand(line[1:])
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	MODE
	RUNES
	TABLE
)

var opMap = map[string]int{
	"quit":  QUIT,
	"q":     QUIT,
	"help":  HELP,
	"mode":  MODE,
	"runes": RUNES,
	"table": TABLE,
}

var opNames = []string{
	"quit",
	"help",
	"mode",
	"runes",
	"table",
}

// parseCommand parses a REPL command, e.g. "mode print" or "table images".
func (intp *Intp) parseCommand(line string) (*Op, error) {
	c := strings.Fields(line)
	if len(c) == 0 {
		return &Op{code: HELP}, nil
	}
	code, ok := opMap[strings.ToLower(c[0])]
	if !ok {
		code = HELP
	}
	op := &Op{code: code}
	if code > QUIT && len(c) > 1 {
		op.arg = c[1]
	}
	if op.arg == "" {
		tracer().Debugf("%s", opNames[code])
	} else {
		tracer().Debugf("%s: '%s'", opNames[code], op.arg)
	}
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:  quitOp,
	HELP:  helpOp,
	MODE:  modeOp,
	RUNES: runesOp,
	TABLE: tableOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func modeOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		pterm.Printf("Output mode is %s\n", intp.mode)
		return nil, false
	}
	mode, err := mathmark.ParseMode(op.arg)
	if err != nil {
		return err, false
	}
	intp.mode = mode
	tracer().Infof("setting output mode: %s", mode)
	return nil, false
}
