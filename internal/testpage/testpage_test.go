package testpage

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	page := New("Math")
	require.NoError(t, page.Add(`<i>a<span class="math-normal">＜</span>b</i>`))
	require.NoError(t, page.Add(`<i><img src="images/math_symbols/sum.png"/><sup>n</sup></i>`))
	page.AddFailure(`\foo`, errors.New("unknown command"))
	assert.Equal(t, 3, page.Len())
	//
	var sb strings.Builder
	require.NoError(t, page.Render(&sb))
	out := sb.String()
	t.Logf("page = %s", out)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html><html><head><meta charset=\"UTF-8\"/>"))
	assert.Contains(t, out, `<link rel="stylesheet" href="mathmark.css" type="text/css"/>`)
	assert.Contains(t, out,
		`<li><span class="equation"><i>a<span class="math-normal">＜</span>b</i></span></li>`)
	assert.Contains(t, out,
		`<li><span class="equation"><i><img src="images/math_symbols/sum.png"/><sup>n</sup></i></span></li>`)
	assert.Contains(t, out, `<span class="failure">\foo: unknown command</span>`)
	//
	sb.Reset()
	require.NoError(t, page.Render(&sb), "page may be rendered twice")
	assert.Equal(t, out, sb.String())
}
