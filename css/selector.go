package css

import "strings"

// Selector accumulates fragments of a complex CSS selector. Every method
// mutates the selector in place and returns it so calls could be chained:
//
//	css.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
//
// A fragment that would break CSS syntax order or uniqueness rules is not
// added. Instead selector remembers the first such error (see Err) and ignores
// all following mutations, so a failed chain never produces partially valid
// text under the impression that it succeeded. Selector is not safe for
// concurrent use.
type Selector struct {
	tokens []Token
	err    error
}

// New returns an empty selector.
func New() *Selector {
	return &Selector{}
}

// Err returns the first composition error encountered by this selector, if any.
// The error is always of type *CompositionError.
func (s *Selector) Err() error {
	return s.err
}

// Len returns number of tokens (fragments and combinators) in the selector.
func (s *Selector) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the selector token sequence.
func (s *Selector) Tokens() []Token {
	return append([]Token(nil), s.tokens...)
}

// Compounds returns tokens split into compound selectors, combinators are
// dropped.
func (s *Selector) Compounds() [][]Token {
	var (
		groups [][]Token
		cur    []Token
	)
	for _, t := range s.tokens {
		if t.Kind == KindCombinator {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// Clone returns independent copy of the selector, including its error state.
func (s *Selector) Clone() *Selector {
	return &Selector{tokens: s.Tokens(), err: s.err}
}

// Append validates and adds tokens to the selector. Either all tokens are
// added or none and the error is returned and remembered.
func (s *Selector) Append(tokens ...Token) error {
	if s.err != nil {
		return s.err
	}
	candidate := append(s.Tokens(), tokens...)
	if err := validate(candidate); err != nil {
		s.err = err
		return err
	}
	s.tokens = candidate
	return nil
}

func (s *Selector) add(t Token) *Selector {
	_ = s.Append(t)
	return s
}

// Element adds type selector, "*" is accepted as universal selector.
func (s *Selector) Element(name string) *Selector {
	return s.add(elementToken(name))
}

// ID adds "#name".
func (s *Selector) ID(name string) *Selector {
	return s.add(idToken(name))
}

// Class adds ".name".
func (s *Selector) Class(name string) *Selector {
	return s.add(classToken(name))
}

// Attr adds "[expr]", expression is not interpreted.
func (s *Selector) Attr(expr string) *Selector {
	return s.add(attrToken(expr))
}

// PseudoClass adds ":name". Functional pseudo-classes are passed as opaque
// text, e.g. "nth-child(2n+1)".
func (s *Selector) PseudoClass(name string) *Selector {
	return s.add(pseudoClassToken(name))
}

// PseudoElement adds "::name".
func (s *Selector) PseudoElement(name string) *Selector {
	return s.add(pseudoElementToken(name))
}

// Combine replaces content of the selector with left, combinator c and right.
// Tokens of both sides are copied, left and right are not modified. An error
// carried by either side is carried by the result.
func (s *Selector) Combine(left *Selector, c Combinator, right *Selector) *Selector {
	if s.err != nil {
		return s
	}
	switch {
	case left.err != nil:
		s.err = left.err
		return s
	case right.err != nil:
		s.err = right.err
		return s
	}
	tokens := make([]Token, 0, len(left.tokens)+len(right.tokens)+1)
	tokens = append(tokens, left.tokens...)
	tokens = append(tokens, combinatorToken(c))
	tokens = append(tokens, right.tokens...)
	if err := validate(tokens); err != nil {
		s.err = err
		return s
	}
	s.tokens = tokens
	return s
}

// Then joins right to the selector using combinator c.
func (s *Selector) Then(c Combinator, right *Selector) *Selector {
	return s.Combine(s.Clone(), c, right)
}

// String renders selector as CSS text. Empty selector renders as empty string.
// String never fails and does not modify the selector.
func (s *Selector) String() string {
	var sb strings.Builder
	for _, t := range s.tokens {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler. Selector which failed to
// compose cannot be marshaled.
func (s *Selector) MarshalText() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.String()), nil
}
