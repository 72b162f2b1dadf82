package mathmark

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ConverterTestEnviron struct {
	suite.Suite
	conv *Converter
}

// listen for 'go test' command --> run test methods
func TestConverterFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmark")
	defer teardown()
	suite.Run(t, new(ConverterTestEnviron))
}

const overrideFile = "#@# test overrides\n" +
	"\\frac{a}{b}\t<i>a<r>/</r>b</i>\n" +
	"a◆b\t<i>a<r>|</r>b</i>\n"

// run once, before test suite methods
func (env *ConverterTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("mathmark").SetTraceLevel(tracing.LevelInfo)
	path := filepath.Join(env.T().TempDir(), "overrides.tsv")
	env.Require().NoError(os.WriteFile(path, []byte(overrideFile), 0o644))
	conv, err := New(Options{OverrideFile: path})
	env.Require().NoError(err)
	env.conv = conv
}

// run once, after test suite methods
func (env *ConverterTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *ConverterTestEnviron) TestHTML() {
	html, err := env.conv.ToHTML(`\bar{x}`)
	env.Require().NoError(err)
	env.Equal(`<i><span class="math-italic-topbar">x</span></i>`, html)
	html, err = env.conv.ToHTML(`\sum_{i=1}^{n} i`)
	env.Require().NoError(err)
	env.Equal(`<i><img src="images/math_symbols/sum.png"/><sub>i<span class="math-normal">＝1</span></sub><sup>n</sup>i</i>`, html)
}

func (env *ConverterTestEnviron) TestPrint() {
	out, err := env.conv.ToPrintString(`k= \log_2 m`)
	env.Require().NoError(err)
	env.Equal("<i>k<r>＝</r><r>log</r><sub><rsub>2</rsub></sub>m</i>", out)
	out, err = env.conv.ToPrintString(`x^{\mathbf{\mathit{y}}}`)
	env.Require().NoError(err)
	env.Equal("<i>x<sup><bsup><bsup>y</bsup></bsup></sup></i>", out, "italic within bold script")
}

func (env *ConverterTestEnviron) TestOverrides() {
	m, err := env.conv.Parse(`\frac{a}{b}`)
	env.Require().NoError(err, `\frac is unknown but has an override`)
	env.Equal("<i>a<r>/</r>b</i>", m)
	html, err := env.conv.ToHTML("a\nb")
	env.Require().NoError(err)
	env.Equal(`<i>a<span class="math-normal">|</span>b</i>`, html)
	//
	plain, err := New(Options{})
	env.Require().NoError(err)
	_, err = plain.Parse(`\frac{a}{b}`)
	env.Error(err)
}

func (env *ConverterTestEnviron) TestTooDeepBlamesExpression() {
	expr := "x^{a^{b^{c}}}"
	_, err := env.conv.ToHTML(expr)
	env.NoError(err)
	_, err = env.conv.ToPrint(expr)
	var cerr *ConversionError
	env.Require().True(errors.As(err, &cerr))
	env.Equal(TooDeep, cerr.Kind)
	env.Equal(expr, cerr.Expression)
}

func (env *ConverterTestEnviron) TestConvertAll() {
	exprs := []string{`a < b/dy`, `\unknowncmd{x}`, "x^{a^{b^{c}}}", `\bar{x}`}
	results := env.conv.ConvertAll(exprs, Print)
	env.Require().Len(results, len(exprs))
	env.NoError(results[0].Err)
	env.Equal("<i>a<r>＜</r>b<r>/</r>dy</i>", results[0].Output)
	var cerr *ConversionError
	env.Require().True(errors.As(results[1].Err, &cerr))
	env.Equal(UnhandledResidue, cerr.Kind)
	env.Empty(results[1].Output)
	env.Require().True(errors.As(results[2].Err, &cerr))
	env.Equal(TooDeep, cerr.Kind)
	env.NoError(results[3].Err, "batch continues after failures")
	env.Equal("<i><ibar>x</ibar></i>", results[3].Output)
	for i, r := range results {
		env.Equal(exprs[i], r.Expression)
	}
	//
	results = env.conv.ConvertAll(exprs, HTML)
	env.NoError(results[2].Err)
}

func (env *ConverterTestEnviron) TestOptionsFromConfig() {
	conf := testconfig.Conf{
		ConfOverrides: "/does/not/exist.tsv",
		ConfImages:    "/static/math",
		ConfMaxDepth:  3,
	}
	opts := OptionsFromConfig(conf)
	env.Equal("/does/not/exist.tsv", opts.OverrideFile)
	env.Equal("/static/math", opts.ImagePath)
	env.Equal(3, opts.MaxDepth)
	//
	conv, err := NewFromConfig(conf)
	env.Require().NoError(err, "missing override file is not an error")
	html, err := conv.ToHTML(`\nabla`)
	env.Require().NoError(err)
	env.Equal(`<i><img src="/static/math/nabla.png"/></i>`, html)
	_, err = conv.ToHTML("x^{a^{b^{c^{d}}}}")
	env.Error(err, "nesting exceeds configured depth")
	//
	env.Equal(Options{}, OptionsFromConfig(testconfig.Conf{}))
	_, err = New(Options{MaxDepth: -1})
	env.Error(err)
}

func (env *ConverterTestEnviron) TestParseMode() {
	m, err := ParseMode(" Print ")
	env.NoError(err)
	env.Equal(Print, m)
	env.Equal("html", HTML.String())
	_, err = ParseMode("pdf")
	env.Error(err)
}
