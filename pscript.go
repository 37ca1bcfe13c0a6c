// Package pscript provides a fluent API for inspecting DSC-compliant
// PostScript documents.
//
// Basic usage:
//
//	info, warnings, err := pscript.Open("document.ps").Info()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pscript.FormatWarnings(warnings))
//	}
//
// With options:
//
//	var buf bytes.Buffer
//	_, err := pscript.Open("document.ps").
//	    IgnoreComments().
//	    SkipEmbeddedDocuments().
//	    CopyTo(&buf)
//
// For advanced use cases, the lower-level dsc package is also available.
package pscript

import (
	"errors"
	"io"
	"strings"

	"github.com/tsawler/pscript/dsc"
)

// ErrUnsupportedFormat is returned when the input is recognizably not a
// PostScript document (for example a PDF).
var ErrUnsupportedFormat = errors.New("pscript: input is not a PostScript document")

// Warning is a non-fatal conformance finding collected during parsing.
type Warning = dsc.Warning

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}

// Open opens a PostScript file and returns an Inspector for fluent
// configuration. The file is opened lazily by the terminal operations.
//
// Example:
//
//	info, warnings, err := pscript.Open("document.ps").Info()
func Open(filename string) *Inspector {
	return &Inspector{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Inspector from an already-opened reader. The caller
// keeps ownership of the reader; format detection is skipped.
func FromReader(r io.Reader) *Inspector {
	return &Inspector{
		r:       r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustInfo wraps a call to Info() and panics if the error is non-nil,
// discarding warnings.
//
// Example:
//
//	info := pscript.MustInfo(pscript.Open("document.ps").Info())
func MustInfo[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
