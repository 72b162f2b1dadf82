package texparse

import "fmt"

// buildTree folds every span BO(n) … BC(n) of a numbered token stream into a
// group token with id n. Spans are matched by id, not by counting.
func buildTree(tokens []Token) ([]Token, error) {
	type frame struct {
		id     int
		tokens []Token
	}
	stack := []frame{{id: -1}}
	for _, t := range tokens {
		top := &stack[len(stack)-1]
		switch t.Kind {
		case KindOpen:
			stack = append(stack, frame{id: t.ID})
		case KindClose:
			if t.ID != top.id {
				return nil, errParse(fmt.Sprintf("bracket #%d closed by #%d", top.id, t.ID))
			}
			group := Token{Kind: KindGroup, ID: t.ID, Children: top.tokens}
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.tokens = append(parent.tokens, group)
		default:
			top.tokens = append(top.tokens, t)
		}
	}
	if len(stack) != 1 {
		return nil, errParse(fmt.Sprintf("bracket #%d left open", stack[len(stack)-1].id))
	}
	return stack[0].tokens, nil
}
