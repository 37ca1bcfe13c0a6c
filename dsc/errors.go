package dsc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEOF is returned when the input ends without a %%EOF marker.
	ErrMissingEOF = errors.New("dsc: %%EOF not found, document is not well-formed")

	// ErrContentAfterEOF is returned when a non-empty line follows %%EOF.
	ErrContentAfterEOF = errors.New("dsc: content found after %%EOF")

	// ErrNoMoreEvents is returned by the advance operations when the event
	// stream is already exhausted. This indicates caller misuse, not
	// malformed input.
	ErrNoMoreEvents = errors.New("dsc: no more events")

	// ErrNotContentLine is returned by Line when the current event is not
	// a plain content line. This indicates caller misuse.
	ErrNotContentLine = errors.New("dsc: current event is not a content line")

	// ErrMissingHeader is returned by push-mode parsing when the document
	// does not begin with a "%!" header comment.
	ErrMissingHeader = errors.New("dsc: document does not start with a %! header comment")
)

// MalformedValueError reports that a typed directive constructor rejected a
// directive's value. It names the directive and wraps the underlying cause.
type MalformedValueError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("dsc: malformed value for %%%%%s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *MalformedValueError) Unwrap() error { return e.Err }

// Warning is a non-fatal conformance finding collected during parsing.
type Warning struct {
	Message string
}
