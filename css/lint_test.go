package css_test

import (
	"testing"

	"selkit/css"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		sel      *css.Selector
		warnings int
	}{
		{"clean", css.Element("a").ID("main").Class("nav-item").Attr(`href$=".png"`).PseudoClass("focus").PseudoElement("before"), 0},
		{"universal", css.Element("*").Class("x"), 0},
		{"functional pseudo-class", css.Element("li").PseudoClass("nth-child(2n+1)"), 0},
		{"vendor prefix", css.PseudoElement("-webkit-scrollbar"), 0},
		{"class starts with digit", css.Class("1col"), 1},
		{"element with space", css.Element("my element"), 1},
		{"empty class", css.Class(""), 1},
		{"unbalanced pseudo-class", css.PseudoClass("not(.x"), 1},
		{"padded child combinator", css.Combine(css.Element("a"), " > ", css.Element("b")), 0},
		{"empty combinator", css.Combine(css.Element("a"), "", css.Element("b")), 0},
		{"non-standard combinator", css.Combine(css.Element("a"), "||", css.Element("b")), 1},
		{"several", css.Combine(css.Class("1a"), "/deep/", css.Element("b").Class("2b")), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sel.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := css.Lint(tt.sel)
			if len(got) != tt.warnings {
				t.Errorf("Lint() returned %d warnings, want %d: %v", len(got), tt.warnings, got)
			}
		})
	}
}
