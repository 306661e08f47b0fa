package css

import "fmt"

// Violation names the rule broken by a fragment.
type Violation int

const (
	// ViolationDuplicate - second element, id or pseudo-element in one compound selector.
	ViolationDuplicate Violation = iota
	// ViolationOrder - fragment placed after a fragment of a later rank.
	ViolationOrder
	// ViolationDangling - combinator without compound selector on one of its sides.
	ViolationDangling
	// ViolationKind - token of undeclared kind.
	ViolationKind
)

// CompositionError is returned when a fragment cannot be added to a selector
// without breaking CSS syntax rules.
type CompositionError struct {
	Violation Violation
	Token     Token // offending fragment
	Conflict  Token // fragment already present, zero for ViolationDangling
}

func (e *CompositionError) Error() string {
	switch e.Violation {
	case ViolationDuplicate:
		return fmt.Sprintf("duplicate %s in compound selector: %q already has %q", e.Token.Kind, e.Token.String(), e.Conflict.String())
	case ViolationOrder:
		return fmt.Sprintf("%s %q cannot follow %s %q in compound selector", e.Token.Kind, e.Token.String(), e.Conflict.Kind, e.Conflict.String())
	case ViolationDangling:
		return fmt.Sprintf("combinator %q requires compound selector on each side", e.Token.Value)
	case ViolationKind:
		return fmt.Sprintf("unknown fragment kind %d with value %q", int(e.Token.Kind), e.Token.Value)
	default:
		return "invalid selector composition"
	}
}
