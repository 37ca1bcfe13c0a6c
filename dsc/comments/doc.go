// Package comments provides the standard catalog of typed DSC comments.
//
// A [Registry] maps directive names to typed constructors and implements
// dsc.Classifier, so it can be injected into a dsc.Parser:
//
//	p, err := dsc.NewParserWithClassifier(r, comments.Default())
//
// Each typed comment parses its raw value into a structured representation
// at classification time; a parse failure surfaces from the parser as a
// *dsc.MalformedValueError naming the directive.
package comments
