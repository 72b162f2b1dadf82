package texparse

import "fmt"

// DefaultMaxDepth is the default limit for bracket nesting.
const DefaultMaxDepth = 64

// numberBrackets assigns a unique id to every pair of curly brackets, in a
// single left-to-right pass. Ids are assigned in order of appearance of the
// opening bracket, starting with 0. A closing bracket receives the id of its
// matching opening bracket.
//
// Unbalanced brackets and nesting deeper than maxDepth are errors.
func numberBrackets(tokens []Token, maxDepth int) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	stack := make([]int, 0, 16)
	id := 0
	for _, t := range tokens {
		switch {
		case t.is("{"):
			if len(stack) >= maxDepth {
				return nil, fmt.Errorf("%w (limit is %d)", ErrTooDeepBrackets, maxDepth)
			}
			stack = append(stack, id)
			out = append(out, Token{Kind: KindOpen, ID: id})
			id++
		case t.is("}"):
			if len(stack) == 0 {
				return nil, ErrBracketUnderflow
			}
			out = append(out, Token{Kind: KindClose, ID: stack[len(stack)-1]})
			stack = stack[:len(stack)-1]
		default:
			out = append(out, t)
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w (bracket #%d)", ErrUnbalanced, stack[len(stack)-1])
	}
	return out, nil
}
