package mathmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/mathmark/markup"
	"github.com/npillmayer/mathmark/overrides"
	"github.com/npillmayer/mathmark/texparse"
	"github.com/npillmayer/schuko"
)

// ConversionError is the error type for rejected expressions.
type ConversionError = texparse.ConversionError

// FailureKind tells why an expression has been rejected.
type FailureKind = texparse.FailureKind

// Failure kinds, see package texparse.
const (
	UnhandledResidue = texparse.UnhandledResidue
	InternalFault    = texparse.InternalFault
	TooDeep          = texparse.TooDeep
)

// Configuration keys read by OptionsFromConfig.
const (
	ConfOverrides = "mathmark.overrides"
	ConfImages    = "mathmark.images"
	ConfMaxDepth  = "mathmark.maxdepth"
)

// Options configure a Converter. The zero value is usable.
type Options struct {
	OverrideFile string // path of an override file, may be empty or missing
	ImagePath    string // location of symbol images for HTML output
	MaxDepth     int    // maximum bracket nesting, 0 for default
}

// OptionsFromConfig reads converter options from a configuration.
func OptionsFromConfig(conf schuko.Configuration) Options {
	var opts Options
	if conf == nil {
		return opts
	}
	if conf.IsSet(ConfOverrides) {
		opts.OverrideFile = conf.GetString(ConfOverrides)
	}
	if conf.IsSet(ConfImages) {
		opts.ImagePath = conf.GetString(ConfImages)
	}
	if conf.IsSet(ConfMaxDepth) {
		opts.MaxDepth = conf.GetInt(ConfMaxDepth)
	}
	return opts
}

// Converter converts math expressions. A Converter is immutable after creation
// and may be used concurrently.
type Converter struct {
	overrides *overrides.Table
	imagePath string
	params    texparse.Params
}

// New creates a converter. An override file which does not exist is treated
// as empty; other errors reading it are returned.
func New(opts Options) (*Converter, error) {
	table, err := overrides.Load(opts.OverrideFile)
	if err != nil {
		return nil, err
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid maximum nesting depth %d", opts.MaxDepth)
	}
	imagePath := opts.ImagePath
	if imagePath == "" {
		imagePath = markup.DefaultImagePath
	}
	c := &Converter{
		overrides: table,
		imagePath: imagePath,
		params:    texparse.Params{MaxDepth: opts.MaxDepth},
	}
	tracer().Debugf("new converter with %d overrides, images at %q", table.Len(), imagePath)
	return c, nil
}

// NewFromConfig creates a converter from configuration keys, see
// OptionsFromConfig.
func NewFromConfig(conf schuko.Configuration) (*Converter, error) {
	return New(OptionsFromConfig(conf))
}

// Parse converts an expression into intermediate tag markup. If the
// expression has an override, the override is returned without parsing.
func (c *Converter) Parse(expr string) (string, error) {
	if r, ok := c.overrides.Lookup(expr); ok {
		tracer().Debugf("override for %q", expr)
		return r, nil
	}
	return texparse.ParseWith(expr, c.params)
}

// ToHTML converts an expression into an HTML fragment.
func (c *Converter) ToHTML(expr string) (string, error) {
	m, err := c.Parse(expr)
	if err != nil {
		return "", err
	}
	html, err := markup.ToHTML(m, c.imagePath)
	return html, blame(err, expr)
}

// ToPrint converts an expression into a print production tree.
func (c *Converter) ToPrint(expr string) (*etree.Document, error) {
	m, err := c.Parse(expr)
	if err != nil {
		return nil, err
	}
	doc, err := markup.ToPrint(m)
	return doc, blame(err, expr)
}

// ToPrintString converts an expression into serialized print production
// markup.
func (c *Converter) ToPrintString(expr string) (string, error) {
	doc, err := c.ToPrint(expr)
	if err != nil {
		return "", err
	}
	return markup.WritePrint(doc)
}

// blame attributes a rendering error to the original expression instead of
// its intermediate markup.
func blame(err error, expr string) error {
	var cerr *ConversionError
	if errors.As(err, &cerr) {
		return texparse.Failure(cerr.Kind, expr, cerr.Cause)
	}
	return err
}

// Mode selects an output rendition.
type Mode int

const (
	HTML  Mode = iota // HTML fragments
	Print             // print production markup
)

func (m Mode) String() string {
	switch m {
	case HTML:
		return "html"
	case Print:
		return "print"
	}
	return "unknown"
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return HTML, nil
	case "print":
		return Print, nil
	}
	return HTML, fmt.Errorf("unknown output mode %q", s)
}

// Result is the outcome of converting one expression of a batch.
type Result struct {
	Expression string
	Output     string
	Err        error
}

// ConvertAll converts a batch of expressions. Failures are recorded per
// expression and never abort the batch.
func (c *Converter) ConvertAll(exprs []string, mode Mode) []Result {
	results := make([]Result, len(exprs))
	failed := 0
	for i, expr := range exprs {
		results[i].Expression = expr
		switch mode {
		case Print:
			results[i].Output, results[i].Err = c.ToPrintString(expr)
		default:
			results[i].Output, results[i].Err = c.ToHTML(expr)
		}
		if results[i].Err != nil {
			failed++
			tracer().Infof("%v", results[i].Err)
		}
	}
	tracer().Debugf("converted %d expressions, %d failed", len(exprs), failed)
	return results
}
