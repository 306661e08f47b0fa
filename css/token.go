package css

import "strings"

// Kind identifies the type of a single selector fragment.
type Kind int

// Fragment kinds. Order of declaration is the rank used to enforce CSS syntax
// order inside a compound selector: Element < ID < Class < Attribute <
// PseudoClass < PseudoElement. Combinator is not ranked.
const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
	KindCombinator
)

var kindNames = [...]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
	KindCombinator:    "combinator",
}

// String returns human readable name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Repeatable reports whether the kind may appear more than once in a single
// compound selector.
func (k Kind) Repeatable() bool {
	return k == KindClass || k == KindAttribute || k == KindPseudoClass
}

// Combinator is the symbol joining two compound selectors. Any text is
// accepted, only the four constants below are standard.
type Combinator string

const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

// Valid returns true for the four standard CSS combinators. Surrounding
// spaces are ignored, empty symbol is a descendant combinator.
func (c Combinator) Valid() bool {
	switch c.symbol() {
	case Descendant, Child, NextSibling, SubsequentSibling:
		return true
	}
	return false
}

// String returns the combinator as it appears between two compound selectors.
// Descendant renders as a single space, everything else is padded with one
// space on each side.
func (c Combinator) String() string {
	sym := c.symbol()
	if sym == Descendant {
		return " "
	}
	return " " + string(sym) + " "
}

func (c Combinator) symbol() Combinator {
	sym := strings.TrimSpace(string(c))
	if sym == "" {
		return Descendant
	}
	return Combinator(sym)
}

// Token is a single selector fragment.
type Token struct {
	Kind  Kind
	Value string
}

// String returns CSS text of the fragment.
func (t Token) String() string {
	switch t.Kind {
	case KindElement:
		return t.Value
	case KindID:
		return "#" + t.Value
	case KindClass:
		return "." + t.Value
	case KindAttribute:
		return "[" + t.Value + "]"
	case KindPseudoClass:
		return ":" + t.Value
	case KindPseudoElement:
		return "::" + t.Value
	case KindCombinator:
		return Combinator(t.Value).String()
	default:
		// best effort for malformed tokens
		return t.Value
	}
}

func elementToken(name string) Token       { return Token{Kind: KindElement, Value: name} }
func idToken(name string) Token            { return Token{Kind: KindID, Value: name} }
func classToken(name string) Token         { return Token{Kind: KindClass, Value: name} }
func attrToken(expr string) Token          { return Token{Kind: KindAttribute, Value: expr} }
func pseudoClassToken(name string) Token   { return Token{Kind: KindPseudoClass, Value: name} }
func pseudoElementToken(name string) Token { return Token{Kind: KindPseudoElement, Value: name} }
func combinatorToken(c Combinator) Token   { return Token{Kind: KindCombinator, Value: string(c)} }
