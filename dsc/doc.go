// Package dsc implements a streaming parser for DSC-compliant PostScript
// files (DSC = Document Structuring Conventions).
//
// The Document Structuring Conventions interleave free-form PostScript lines
// with structured comments carrying name/value metadata, used to delimit
// document sections such as pages, resources, and the trailer. The parser
// classifies every line into an [Event] without ever interpreting the
// PostScript content itself.
//
// # Events
//
// Every line of input yields exactly one event:
//
//   - [HeaderComment] - the leading version line ("%!...")
//   - [Directive] - a structured DSC comment ("%%Name: value" or "%%Name")
//   - [Comment] - an ordinary PostScript comment ("%...")
//   - [ContentLine] - any other line, passed through verbatim
//   - [EOFDirective] - the "%%EOF" end marker
//
// Directives themselves come in several shapes: [RawDirective] when no
// typed constructor is registered for the name, [AtendDirective] when the
// declared value is the "(atend)" placeholder, and implementations of
// [TypedDirective] produced by an injected [Classifier].
//
// # Pull and push parsing
//
// [Parser] is a pull parser with a one-event lookahead: [Parser.HasNext],
// [Parser.Peek], and [Parser.Next] step through the document one event at a
// time. [Parser.Parse] drives the same event stream in push mode, dispatching
// each event to a [Handler].
//
// Directive values may span multiple lines using the "%%+" continuation
// prefix. The parser merges continuation lines transparently; the first
// non-continuation line is rolled back and delivered as its own event.
package dsc
