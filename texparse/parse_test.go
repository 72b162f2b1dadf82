package texparse

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ParseTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestParseFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmark.parse")
	defer teardown()
	suite.Run(t, new(ParseTestEnviron))
}

// run once, before test suite methods
func (env *ParseTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("mathmark.parse").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *ParseTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

func (env *ParseTestEnviron) convert(expr string) string {
	out, err := Parse(expr)
	env.Require().NoError(err, "expression %q", expr)
	return out
}

func (env *ParseTestEnviron) reject(expr string, kind FailureKind) *ConversionError {
	out, err := Parse(expr)
	env.Require().Error(err, "expected %q to be rejected", expr)
	env.Empty(out, "no partial output expected")
	var cerr *ConversionError
	env.Require().True(errors.As(err, &cerr), "expected a ConversionError, got %T", err)
	env.Equal(kind, cerr.Kind, "expression %q: %v", expr, err)
	return cerr
}

// --- Tests -----------------------------------------------------------------

func (env *ParseTestEnviron) TestOperatorsAndLetters() {
	env.Equal("<i>a<r>＜</r>b<r>/</r>dy</i>", env.convert("a < b/dy"))
	env.Equal("<i>k<r>＝</r><r>log</r><sub><r>2</r></sub>m</i>", env.convert(`k= \log_2 m`))
	env.Equal("<i><r>2</r>πr</i>", env.convert(`2\pi r`))
}

func (env *ParseTestEnviron) TestScripts() {
	env.Equal("<i>x<sup>y<sup>z</sup></sup></i>", env.convert("x^{y^{z}}"))
	env.Equal("<i>x<sup><r>12</r></sup></i>", env.convert("x^{12}"))
	env.Equal("<i>x<sup><r>1</r></sup><r>2</r></i>", env.convert("x^12"))
	env.Equal("<i><img>sum</img><sub>i<r>＝1</r></sub><sup>n</sup>i</i>",
		env.convert(`\sum_{i=1}^{n} i`))
	env.Equal("<i><r>(</r>x<sub>n</sub>x<sub>n<r>−1</r></sub><r>…</r>x<sub><r>0</r></sub><r>)</r><sub>b</sub></i>",
		env.convert(`(x_{n}x_{n-1}\cdots x_{0})_{b}`))
}

func (env *ParseTestEnviron) TestAccent() {
	env.Equal("<i><ibar>x</ibar></i>", env.convert(`\bar{x}`))
	env.reject(`\bar{\bar{x}}`, UnhandledResidue)
}

func (env *ParseTestEnviron) TestBoxes() {
	env.Equal("<i><r>a and b <r>1</r></r></i>", env.convert(`\mbox{a and b 1}`))
	env.Equal("<i>val<r><r>%</r>64</r></i>", env.convert(`val\mbox{\%}64`))
	env.Equal("<i><i>feed</i></i>", env.convert(`\mathit{feed}`))
	env.Equal("<i><b>v</b></i>", env.convert(`\mathbf{v}`))
	env.Equal("<i><r>d</r>x</i>", env.convert(`\rm{d}x`))
	env.Equal("<i><r>a b</r></i>", env.convert(`\mbox{a\>b}`))
	env.Equal("<i><r><r>1＋2</r></r></i>", env.convert(`\mbox{1+2}`), "runs merge across escapes in boxes")
}

func (env *ParseTestEnviron) TestSpaces() {
	env.Equal("<i>f<r>(</r>x<r>,</r> y<r>)</r></i>", env.convert("f(x,y)"))
	env.Equal("<i><r>1,</r> <r>2</r></i>", env.convert("1, 2"))
	env.Equal("<i>a b</i>", env.convert(`a\ b`))
	env.Equal("<i>ab</i>", env.convert(`a\>b`))
	env.Equal("<i>ab</i>", env.convert("a \t\n b"))
}

func (env *ParseTestEnviron) TestUnknownCommand() {
	cerr := env.reject(`\unknowncmd{x}`, UnhandledResidue)
	env.Equal(`\unknowncmd{x}`, cerr.Expression)
	env.Contains(cerr.Error(), "UNHANDLED")
}

func (env *ParseTestEnviron) TestResidue() {
	env.reject("{x}", UnhandledResidue)
	env.reject("x^{}", UnhandledResidue)
	env.reject(`a\`, UnhandledResidue)
	cerr := env.reject("a\nb\\foo", UnhandledResidue)
	env.Equal(`a◆b\foo`, cerr.Expression)
}

func (env *ParseTestEnviron) TestBracketFaults() {
	cerr := env.reject("a}b", InternalFault)
	env.True(errors.Is(cerr, ErrBracketUnderflow))
	cerr = env.reject("{a", InternalFault)
	env.True(errors.Is(cerr, ErrUnbalanced))
	//
	_, err := ParseWith("x^{a^{b}}", Params{MaxDepth: 1})
	env.True(errors.Is(err, ErrTooDeepBrackets))
	_, err = ParseWith("x^{a^{b}}", Params{MaxDepth: 2})
	env.NoError(err)
}

func (env *ParseTestEnviron) TestNoBackslashInOutput() {
	for _, expr := range []string{
		`\alpha + \beta = \gamma`,
		`x \times y \leq z \cdot w`,
		`\{a, b\}`,
		`\mathrm{max}(a, b) \geq 0`,
		`e^{i\pi} \approx -1`,
		`\nabla f \Rightarrow \oint`,
	} {
		out := env.convert(expr)
		env.NotContains(out, `\`, "expression %q", expr)
	}
}

func (env *ParseTestEnviron) TestConcurrentConversions() {
	exprs := []string{`\mbox{a}\mbox{b}`, `x^{\mathbf{v}}`, `\mathit{\mbox{c}}`}
	want := make([]string, len(exprs))
	for i, expr := range exprs {
		want[i] = env.convert(expr)
	}
	var wg sync.WaitGroup
	got := make([]string, 8*len(exprs))
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = Parse(exprs[i%len(exprs)])
		}(i)
	}
	wg.Wait()
	for i := range got {
		env.Equal(want[i%len(exprs)], got[i])
	}
}
