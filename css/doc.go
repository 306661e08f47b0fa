// Package css composes CSS selectors from typed fragments.
//
// A selector is built from compound selectors (element, id, classes,
// attributes, pseudo-classes and pseudo-element, always in this order) joined
// by combinators. Order and uniqueness are enforced as fragments are added, so
// a selector which renders without error is syntactically sound:
//
//	css.Combine(css.Element("div").ID("main"), css.NextSibling, css.Element("table").ID("data")).String()
//	// div#main + table#data
//
// Parsing selector text and matching selectors against documents are out of
// scope.
package css
