package recipe

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"selkit/css"
)

const sample = `
selectors:
  - name: thumbnail-link
    steps:
      - element: a
      - attr: 'href$=".png"'
      - pseudo_class: focus
  - name: data-table
    steps:
      - element: div
      - id: main
      - combine: "+"
      - element: table
      - id: data
  - name: nested
    steps:
      - element: nav
      - combine: ">"
      - element: ul
      - combine: " "
      - element: li
      - class: active
`

func TestBuild(t *testing.T) {
	book, err := LoadBytes([]byte(sample))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	results, err := book.Build(zaptest.NewLogger(t), true)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := map[string]string{
		"thumbnail-link": `a[href$=".png"]:focus`,
		"data-table":     "div#main + table#data",
		"nested":         "nav > ul li.active",
	}
	if len(results) != len(want) {
		t.Fatalf("Build() returned %d results, want %d", len(results), len(want))
	}
	for _, r := range results {
		if r.Selector != want[r.Name] {
			t.Errorf("%s: got %q, want %q", r.Name, r.Selector, want[r.Name])
		}
		if len(r.Warnings) != 0 {
			t.Errorf("%s: unexpected warnings %v", r.Name, r.Warnings)
		}
	}
}

func TestBuild_CollectsErrors(t *testing.T) {
	data := `
selectors:
  - name: good
    steps:
      - class: ok
  - name: order
    steps:
      - id: x
      - element: y
  - name: good
    steps:
      - class: again
  - name: empty
  - name: double
    steps:
      - element: a
        class: b
  - name: dangling
    steps:
      - element: a
      - combine: ">"
  - name: blank
    steps:
      - {}
`
	book, err := LoadBytes([]byte(data))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	results, err := book.Build(zaptest.NewLogger(t), false)
	if len(results) != 1 || results[0].Name != "good" {
		t.Errorf("unexpected results: %+v", results)
	}

	errs := multierr.Errors(err)
	if len(errs) != 6 {
		t.Fatalf("expected 6 errors, got %d: %v", len(errs), err)
	}
	var ce *css.CompositionError
	if !errors.As(errs[0], &ce) || ce.Violation != css.ViolationOrder {
		t.Errorf("expected order violation first, got %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "duplicate name") {
		t.Errorf("expected duplicate name error, got %v", errs[1])
	}
	if !errors.As(errs[4], &ce) || ce.Violation != css.ViolationDangling {
		t.Errorf("expected dangling combinator error, got %v", errs[4])
	}
	if !errors.Is(errs[5], errEmptyStep) {
		t.Errorf("expected empty step error, got %v", errs[5])
	}
}

func TestBuild_Lint(t *testing.T) {
	book := &Book{Selectors: []Recipe{{Name: "odd", Steps: []Step{{Class: "1st"}, {Combine: "/deep/"}, {Element: "p"}}}}}
	results, err := book.Build(nil, true)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(results) != 1 || len(results[0].Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %+v", results)
	}
	if results[0].Selector != ".1st /deep/ p" {
		t.Errorf("Selector = %q", results[0].Selector)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	if _, err := LoadBytes([]byte("selectors:\n  - name: x\n    stepz: []\n")); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoad_Empty(t *testing.T) {
	book, err := LoadBytes(nil)
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	results, err := book.Build(nil, false)
	if err != nil || len(results) != 0 {
		t.Errorf("unexpected results %v, error %v", results, err)
	}
}

func TestSortResults(t *testing.T) {
	results := []Result{{Name: "item-10"}, {Name: "item-2"}, {Name: "alpha"}, {Name: "item-1"}}
	SortResults(results)
	var names []string
	for _, r := range results {
		names = append(names, r.Name)
	}
	if got, want := strings.Join(names, ","), "alpha,item-1,item-2,item-10"; got != want {
		t.Errorf("SortResults() = %s, want %s", got, want)
	}
}
