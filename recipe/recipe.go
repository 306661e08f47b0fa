// Package recipe builds named selectors described in YAML documents.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"selkit/css"
)

// Step is a single selector fragment or a combinator. Exactly one field must
// be set.
type Step struct {
	Element       string `yaml:"element,omitempty"`
	ID            string `yaml:"id,omitempty"`
	Class         string `yaml:"class,omitempty"`
	Attr          string `yaml:"attr,omitempty"`
	PseudoClass   string `yaml:"pseudo_class,omitempty"`
	PseudoElement string `yaml:"pseudo_element,omitempty"`
	Combine       string `yaml:"combine,omitempty"`
}

// Recipe describes one named selector.
type Recipe struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Book is a collection of recipes as read from a single document.
type Book struct {
	Selectors []Recipe `yaml:"selectors"`
}

// Result is a successfully built selector.
type Result struct {
	Name     string   `yaml:"name" json:"name"`
	Selector string   `yaml:"selector" json:"selector"`
	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

var errEmptyStep = errors.New("step has no fragment")

// Load reads recipe book from r. Unknown fields are rejected.
func Load(r io.Reader) (*Book, error) {
	var book Book
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&book); err != nil {
		if errors.Is(err, io.EOF) {
			return &book, nil
		}
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	return &book, nil
}

// LoadBytes is Load for in-memory data.
func LoadBytes(data []byte) (*Book, error) {
	return Load(bytes.NewReader(data))
}

// Build composes every recipe in the book. All recipes are attempted, errors
// for the failed ones are combined. When lint is requested results carry
// warnings for suspicious fragment names.
func (b *Book) Build(log *zap.Logger, lint bool) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("recipe")

	var (
		results []Result
		errs    error
		seen    = make(map[string]bool, len(b.Selectors))
	)
	for i, rc := range b.Selectors {
		name := rc.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if seen[name] {
			errs = multierr.Append(errs, fmt.Errorf("recipe '%s': duplicate name", name))
			continue
		}
		seen[name] = true

		sel, err := rc.Selector()
		if err != nil {
			log.Debug("Unable to compose selector", zap.String("name", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("recipe '%s': %w", name, err))
			continue
		}

		res := Result{Name: name, Selector: sel.String()}
		if lint {
			res.Warnings = css.Lint(sel)
			for _, w := range res.Warnings {
				log.Warn("Suspicious selector", zap.String("name", name), zap.String("warning", w))
			}
		}
		log.Debug("Selector composed", zap.String("name", name), zap.String("selector", res.Selector))
		results = append(results, res)
	}
	return results, errs
}

// Selector composes selector from recipe steps. Every "combine" step closes
// the chain built so far, which becomes left side of the combinator.
func (rc Recipe) Selector() (*css.Selector, error) {
	if len(rc.Steps) == 0 {
		return nil, errors.New("no steps")
	}

	var (
		left    *css.Selector
		pending css.Combinator
		cur     = css.New()
	)
	for i, st := range rc.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if st.Combine == "" {
			st.apply(cur)
			if err := cur.Err(); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			continue
		}
		if left != nil {
			cur = css.Combine(left, pending, cur)
		}
		left, pending, cur = cur, css.Combinator(st.Combine), css.New()
	}
	if left != nil {
		cur = css.Combine(left, pending, cur)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return cur, nil
}

func (st Step) check() error {
	n := 0
	for _, v := range []string{st.Element, st.ID, st.Class, st.Attr, st.PseudoClass, st.PseudoElement, st.Combine} {
		if v != "" {
			n++
		}
	}
	switch {
	case n == 0:
		return errEmptyStep
	case n > 1:
		return fmt.Errorf("step sets %d fragments, only one is allowed", n)
	}
	return nil
}

func (st Step) apply(sel *css.Selector) {
	switch {
	case st.Element != "":
		sel.Element(st.Element)
	case st.ID != "":
		sel.ID(st.ID)
	case st.Class != "":
		sel.Class(st.Class)
	case st.Attr != "":
		sel.Attr(st.Attr)
	case st.PseudoClass != "":
		sel.PseudoClass(st.PseudoClass)
	case st.PseudoElement != "":
		sel.PseudoElement(st.PseudoElement)
	}
}

// SortResults orders results by name using natural order, so "item-2" comes
// before "item-10".
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return natural.Less(results[i].Name, results[j].Name)
	})
}
