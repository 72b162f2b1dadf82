package texparse

import (
	"fmt"
	"strings"
)

// Params controls a conversion.
type Params struct {
	MaxDepth int // maximum bracket nesting depth, 0 means DefaultMaxDepth
}

// parseState holds everything which is local to a single conversion.
type parseState struct {
	params Params
	boxes  boxStore
}

func newParseState(params Params) *parseState {
	if params.MaxDepth <= 0 {
		params.MaxDepth = DefaultMaxDepth
	}
	return &parseState{params: params}
}

// Parse converts a LaTeX math expression into intermediate tag markup, using
// default parameters. See ParseWith.
func Parse(expr string) (string, error) {
	return ParseWith(expr, Params{})
}

// ParseWith converts a LaTeX math expression into intermediate tag markup.
// The result is wrapped into an italic (math) element `<i>…</i>`.
//
// If the expression contains a construct which cannot be handled, ParseWith
// returns a *ConversionError. No partial output is ever returned.
func ParseWith(expr string, params Params) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("recovered from fault: %v", r)
			result, err = "", Failure(InternalFault, expr, fmt.Errorf("%v", r))
		}
	}()
	st := newParseState(params)
	tokens := escape(expr)
	tracer().Debugf("escaped  = %s", Dump(tokens))
	if tokens, err = numberBrackets(tokens, st.params.MaxDepth); err != nil {
		return "", Failure(InternalFault, expr, err)
	}
	if tokens, err = buildTree(tokens); err != nil {
		return "", Failure(InternalFault, expr, err)
	}
	tokens = expand(tokens, true)
	tracer().Debugf("expanded = %s", Dump(tokens))
	tokens = st.extractBoxes(tokens)
	tokens = protectCommas(tokens)
	tokens = unescape(tokens)
	tokens = st.restore(tokens)
	tokens = unescape(tokens) // escapes within boxes
	s, err := finalize(tokens)
	if err != nil {
		return "", Failure(UnhandledResidue, expr, err)
	}
	if strings.ContainsRune(s, '\\') {
		return "", Failure(UnhandledResidue, expr, errParse("backslash in output"))
	}
	return "<i>" + s + "</i>", nil
}
