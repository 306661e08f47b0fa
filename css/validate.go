package css

// validate walks every compound selector in tokens and checks singleton
// uniqueness and rank ordering. Groups are delimited by combinators.
func validate(tokens []Token) error {
	var (
		last    Token
		started bool
	)
	for i, t := range tokens {
		if t.Kind < KindElement || t.Kind > KindCombinator {
			return &CompositionError{Violation: ViolationKind, Token: t}
		}
		if t.Kind == KindCombinator {
			if !started || i == len(tokens)-1 || tokens[i+1].Kind == KindCombinator {
				return &CompositionError{Violation: ViolationDangling, Token: t}
			}
			started = false
			continue
		}
		if started {
			switch {
			case t.Kind < last.Kind:
				return &CompositionError{Violation: ViolationOrder, Token: t, Conflict: last}
			case t.Kind == last.Kind && !t.Kind.Repeatable():
				return &CompositionError{Violation: ViolationDuplicate, Token: t, Conflict: last}
			}
		}
		last, started = t, true
	}
	return nil
}
