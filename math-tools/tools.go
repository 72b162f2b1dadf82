package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mathmark"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'mathmark'
func tracer() tracing.Trace {
	return tracing.Select("mathmark")
}

func main() {
	commando.
		SetExecutableName("math-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for converting LaTeX math fragments to HTML and print production markup.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("html").
		SetDescription("Convert math expressions to HTML fragments, one per line.").
		SetShortDescription("convert to HTML").
		AddArgument("expr", "expression to convert, '-' reads one expression per line from --input or stdin", "-").
		AddFlag("input,i", "input file with one expression per line", commando.String, "-").
		AddFlag("overrides,o", "override file (pattern<TAB>rendition)", commando.String, "-").
		AddFlag("images", "location of symbol images", commando.String, "-").
		AddFlag("maxdepth", "maximum bracket nesting (0 uses default)", commando.Int, 0).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runHTMLCommand)

	commando.
		Register("print").
		SetDescription("Convert math expressions to print production markup, one per line.").
		SetShortDescription("convert to print markup").
		AddArgument("expr", "expression to convert, '-' reads one expression per line from --input or stdin", "-").
		AddFlag("input,i", "input file with one expression per line", commando.String, "-").
		AddFlag("overrides,o", "override file (pattern<TAB>rendition)", commando.String, "-").
		AddFlag("maxdepth", "maximum bracket nesting (0 uses default)", commando.Int, 0).
		AddFlag("indent", "indent markup, one element per line", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runPrintCommand)

	commando.
		Register("page").
		SetDescription("Convert math expressions and write an HTML test page listing them.").
		SetShortDescription("HTML test page").
		AddArgument("input", "input file with one expression per line, '-' for stdin", "-").
		AddFlag("output,O", "output HTML file", commando.String, "mathmark-test.html").
		AddFlag("css", "stylesheet to link to", commando.String, "mathmark.css").
		AddFlag("title", "page title", commando.String, "Math Expressions").
		AddFlag("overrides,o", "override file (pattern<TAB>rendition)", commando.String, "-").
		AddFlag("images", "location of symbol images", commando.String, "-").
		AddFlag("maxdepth", "maximum bracket nesting (0 uses default)", commando.Int, 0).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runPageCommand)

	commando.Parse(nil)
}

// setupTracing directs tracing to the Go logger. With verbose set, every
// pipeline stage is traced.
func setupTracing(verbose bool) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Error"
	if verbose {
		level = "Debug"
	}
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.mathmark":           level,
		"trace.mathmark.parse":     level,
		"trace.mathmark.markup":    level,
		"trace.mathmark.overrides": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// mustConverter creates a converter from the common flags.
func mustConverter(flags map[string]commando.FlagValue) *mathmark.Converter {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	conf := testconfig.Conf{}
	if path := optionalFlag(flags["overrides"]); path != "" {
		conf[mathmark.ConfOverrides] = path
	}
	if fv, ok := flags["images"]; ok {
		if path := optionalFlag(fv); path != "" {
			conf[mathmark.ConfImages] = path
		}
	}
	if n := mustFlagInt(flags["maxdepth"], "maxdepth"); n != 0 {
		conf[mathmark.ConfMaxDepth] = n
	}
	conv, err := mathmark.NewFromConfig(conf)
	if err != nil {
		fatalf("%v", err)
	}
	return conv
}

// expressions collects the expressions to convert: a single expression given
// as argument, or the lines of an input file or of stdin.
func expressions(arg commando.ArgValue, input string) []string {
	if expr := arg.Value; expr != "" && expr != "-" {
		return []string{expr}
	}
	if input == "" {
		exprs, err := readLines(os.Stdin)
		if err != nil {
			fatalf("cannot read input: %v", err)
		}
		return exprs
	}
	exprs, err := readInput(input)
	if err != nil {
		fatalf("cannot read input: %v", err)
	}
	return exprs
}

// readInput returns the non-empty lines of file path.
func readInput(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// readLines returns the non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// report prints failed conversions to stderr and returns the number of
// failures.
func report(results []mathmark.Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stderr, "Error! %v\n", r.Err)
		}
	}
	return failed
}

// optionalFlag returns the value of a string flag, with "-" meaning unset.
func optionalFlag(flag commando.FlagValue) string {
	s, err := flag.GetString()
	if err != nil || s == "-" {
		return ""
	}
	return strings.TrimSpace(s)
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "math-tools: "+format+"\n", args...)
	os.Exit(1)
}
