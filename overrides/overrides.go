/*
Package overrides loads a table of hand-made renditions for math expressions.

An override file is a UTF-8 text file with one entry per line:

	pattern<TAB>rendition

Lines starting with `#@#` are comments. Newlines within a pattern are written as
the join marker `◆`. Patterns are matched verbatim against a complete
expression (after Unicode NFC normalization); renditions are intermediate tag
markup and bypass parsing altogether.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package overrides

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'mathmark.overrides'
func tracer() tracing.Trace {
	return tracing.Select("mathmark.overrides")
}

// CommentPrefix starts a comment line in an override file.
const CommentPrefix = "#@#"

// JoinMarker stands in for newlines in patterns.
const JoinMarker = "◆"

// Table maps expressions to literal renditions. A Table is read-only after
// loading and may be shared between goroutines. The zero value and nil are
// empty tables.
type Table struct {
	entries map[string]string
}

// Load reads an override file. A missing file is not an error, but results in
// an empty table.
func Load(path string) (*Table, error) {
	if path == "" {
		return &Table{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			tracer().Infof("no override file %q, continuing without overrides", path)
			return &Table{}, nil
		}
		return nil, fmt.Errorf("override file: %w", err)
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("override file %q: %w", path, err)
	}
	tracer().Infof("loaded %d overrides from %q", t.Len(), path)
	return t, nil
}

// Parse reads override entries from r. Later entries replace earlier entries
// with the same pattern.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{entries: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		pattern, rendition, found := strings.Cut(line, "\t")
		if !found {
			if line != "" {
				tracer().Debugf("override line %d has no tab, ignored", lineno)
			}
			continue
		}
		t.entries[Key(pattern)] = rendition
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Key normalizes an expression for lookup: newlines are replaced by the join
// marker and the result is NFC-normalized.
func Key(expr string) string {
	return norm.NFC.String(strings.ReplaceAll(expr, "\n", JoinMarker))
}

// Lookup returns the rendition for an expression, if present.
func (t *Table) Lookup(expr string) (string, bool) {
	if t == nil || len(t.entries) == 0 {
		return "", false
	}
	r, ok := t.entries[Key(expr)]
	return r, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
