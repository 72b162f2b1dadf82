package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/mathmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatisuday/commando"
)

func TestReadLines(t *testing.T) {
	input := "x^2\r\n\n   \n\\mbox{a and b}\nf(x,y)"
	lines, err := readLines(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"x^2", `\mbox{a and b}`, "f(x,y)"}, lines)
}

func TestExpressionFromArgument(t *testing.T) {
	exprs := expressions(commando.ArgValue{Value: "f(x,y)"}, "")
	assert.Equal(t, []string{"f(x,y)"}, exprs)
}

func TestReport(t *testing.T) {
	conv, err := mathmark.New(mathmark.Options{})
	require.NoError(t, err)
	results := conv.ConvertAll([]string{"a", `\nosuchcommand`, "b"}, mathmark.HTML)
	assert.Equal(t, 1, report(results))
}

func TestWriteResultsKeepsLines(t *testing.T) {
	conv, err := mathmark.New(mathmark.Options{})
	require.NoError(t, err)
	results := conv.ConvertAll([]string{"a", `\nosuchcommand`, "b"}, mathmark.HTML)
	var out strings.Builder
	writeResults(&out, results)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3, "one line per expression expected")
	assert.Equal(t, results[0].Output, lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, results[2].Output, lines[2])
	//
	out.Reset()
	writeResults(&out, []mathmark.Result{{Output: "<x/>\n"}, {Output: "<y/>"}})
	assert.Equal(t, "<x/>\n<y/>\n", out.String())
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("x^2\n\nf(x,y)\n"), 0o644))
	exprs, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x^2", "f(x,y)"}, exprs)
	//
	_, err = readInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
