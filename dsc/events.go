package dsc

import "strings"

// EventKind identifies the classification of a parsed line.
type EventKind int

// The zero EventKind is deliberately not a valid classification, so the
// kind returned alongside an error can never be mistaken for a real one.
const (
	// KindHeader is the document's leading version line ("%!...").
	KindHeader EventKind = iota + 1
	// KindDirective is a structured DSC comment ("%%Name: value" or "%%Name").
	KindDirective
	// KindComment is an ordinary PostScript comment ("%...").
	KindComment
	// KindContent is any line that is not a comment, passed through verbatim.
	KindContent
	// KindEOF is the "%%EOF" end marker.
	KindEOF
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case KindHeader:
		return "Header"
	case KindDirective:
		return "Directive"
	case KindComment:
		return "Comment"
	case KindContent:
		return "Content"
	case KindEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Event is a single classified line of a DSC document. Events are immutable
// once constructed and are owned by the parser only until the next advance;
// callers that need to retain data beyond that must copy it out.
type Event interface {
	Kind() EventKind
}

// HeaderComment is the document's version/identification line. Text holds
// everything after the "%!" prefix.
type HeaderComment struct {
	Text string
}

// Kind returns KindHeader.
func (h *HeaderComment) Kind() EventKind { return KindHeader }

// PSAdobe30 reports whether the header declares DSC 3.0 conformance
// ("%!PS-Adobe-3.0").
func (h *HeaderComment) PSAdobe30() bool {
	return strings.HasPrefix(h.Text, "PS-Adobe-3.0")
}

// Comment is a free-form PostScript comment line. Text holds everything
// after the "%" prefix.
type Comment struct {
	Text string
}

// Kind returns KindComment.
func (c *Comment) Kind() EventKind { return KindComment }

// ContentLine is a line of PostScript content, kept verbatim.
type ContentLine struct {
	Text string
}

// Kind returns KindContent.
func (l *ContentLine) Kind() EventKind { return KindContent }

// Directive is a structured DSC comment. The name is the text between the
// "%%" prefix and the first colon; the value is everything after the colon
// with continuation lines merged in.
type Directive interface {
	Event

	// Name returns the directive name without the "%%" prefix.
	Name() string

	// RawValue returns the unparsed directive value and whether a value
	// was present at all ("%%Name" with no colon has none).
	RawValue() (string, bool)
}

// TypedDirective is a directive with a structured, name-specific value
// representation. Implementations are produced by a [Classifier]; the parser
// feeds them the raw value via ParseValue immediately after construction.
type TypedDirective interface {
	Directive

	// ParseValue parses the raw directive value into the directive's
	// structured representation. hasValue is false when the directive
	// carried no value at all.
	ParseValue(raw string, hasValue bool) error
}

// RawDirective is a directive whose name has no registered typed
// constructor. The value is kept as unparsed text.
type RawDirective struct {
	name     string
	value    string
	hasValue bool
}

// NewRawDirective creates a raw directive. hasValue must be false when the
// directive line had no colon.
func NewRawDirective(name, value string, hasValue bool) *RawDirective {
	return &RawDirective{name: name, value: value, hasValue: hasValue}
}

// Kind returns KindDirective.
func (d *RawDirective) Kind() EventKind { return KindDirective }

// Name returns the directive name.
func (d *RawDirective) Name() string { return d.name }

// RawValue returns the unparsed value.
func (d *RawDirective) RawValue() (string, bool) { return d.value, d.hasValue }

// AtendDirective is a directive whose declared value is the "(atend)"
// placeholder: the real value appears again, with its final value, in the
// document trailer.
type AtendDirective struct {
	name string
}

// NewAtendDirective creates a deferred directive for the given name.
func NewAtendDirective(name string) *AtendDirective {
	return &AtendDirective{name: name}
}

// Kind returns KindDirective.
func (d *AtendDirective) Kind() EventKind { return KindDirective }

// Name returns the directive name.
func (d *AtendDirective) Name() string { return d.name }

// RawValue returns the "(atend)" placeholder token.
func (d *AtendDirective) RawValue() (string, bool) { return Atend, true }

// EOFDirective is the "%%EOF" end marker. It is a directive by syntax but
// reports its own event kind so consumers can switch on it directly.
type EOFDirective struct{}

// Kind returns KindEOF.
func (d *EOFDirective) Kind() EventKind { return KindEOF }

// Name returns "EOF".
func (d *EOFDirective) Name() string { return NameEOF }

// RawValue reports no value.
func (d *EOFDirective) RawValue() (string, bool) { return "", false }
