package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Lint returns warnings for fragments which would not be read back by a CSS
// parser as intended: names which are not CSS identifiers and non-standard
// combinators. Attribute expressions are not checked. Lint never changes the
// selector and warnings do not make it invalid.
func Lint(s *Selector) []string {
	var warnings []string
	for _, t := range s.tokens {
		var ok bool
		switch t.Kind {
		case KindElement:
			ok = t.Value == "*" || lexesAs(t.Value, css.IdentToken)
		case KindID:
			ok = lexesAs("#"+t.Value, css.HashToken)
		case KindClass, KindPseudoElement:
			ok = lexesAs(t.Value, css.IdentToken)
		case KindPseudoClass:
			name, _, functional := strings.Cut(t.Value, "(")
			if functional && !strings.HasSuffix(t.Value, ")") {
				warnings = append(warnings, "unbalanced functional pseudo-class: "+t.String())
				continue
			}
			ok = lexesAs(name, css.IdentToken)
		case KindCombinator:
			if !Combinator(t.Value).Valid() {
				warnings = append(warnings, "non-standard combinator: "+t.Value)
			}
			continue
		default:
			continue
		}
		if !ok {
			warnings = append(warnings, "not a valid "+t.Kind.String()+" name: "+t.String())
		}
	}
	return warnings
}

// lexesAs checks that text is a single CSS token of the expected type.
func lexesAs(text string, want css.TokenType) bool {
	if text == "" {
		return false
	}
	l := css.NewLexer(parse.NewInput(strings.NewReader(text)))
	tt, data := l.Next()
	if tt != want || string(data) != text {
		return false
	}
	tt, _ = l.Next()
	return tt == css.ErrorToken
}
