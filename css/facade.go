package css

// Element returns new selector starting with type selector name.
func Element(name string) *Selector { return New().Element(name) }

// ID returns new selector starting with "#name".
func ID(name string) *Selector { return New().ID(name) }

// Class returns new selector starting with ".name".
func Class(name string) *Selector { return New().Class(name) }

// Attr returns new selector starting with "[expr]".
func Attr(expr string) *Selector { return New().Attr(expr) }

// PseudoClass returns new selector starting with ":name".
func PseudoClass(name string) *Selector { return New().PseudoClass(name) }

// PseudoElement returns new selector starting with "::name".
func PseudoElement(name string) *Selector { return New().PseudoElement(name) }

// Combine returns new selector joining a and b with combinator c.
func Combine(a *Selector, c Combinator, b *Selector) *Selector {
	return New().Combine(a, c, b)
}

// Stringify renders an empty selector, always "".
func Stringify() string { return New().String() }
