// Package pswrite re-serializes DSC events to an output stream.
//
// Writer implements dsc.EventWriter, so it can be handed to the parser's
// seeking operations or to dsc.DefaultNestedDocumentHandler as the replay
// sink: every skipped event is written back out verbatim, which is what a
// copy-through of a document needs.
package pswrite

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/pscript/dsc"
)

// maxLineLen is the longest line a fully conforming DSC document may
// contain. Directive values that would exceed it are spilled onto "%%+"
// continuation lines.
const maxLineLen = 255

// Writer writes DSC events back out as PostScript text. Output is buffered;
// call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteEvent implements dsc.EventWriter.
func (w *Writer) WriteEvent(ev dsc.Event) error {
	switch e := ev.(type) {
	case *dsc.HeaderComment:
		return w.WriteLine("%!" + e.Text)
	case *dsc.Comment:
		return w.WriteLine("%" + e.Text)
	case *dsc.ContentLine:
		return w.WriteLine(e.Text)
	case dsc.Directive:
		return w.WriteDirective(e)
	default:
		return fmt.Errorf("pswrite: unknown event type %T", ev)
	}
}

// WriteDirective writes a directive, splitting an over-long value into
// continuation lines at word boundaries where possible.
func (w *Writer) WriteDirective(d dsc.Directive) error {
	if d.Kind() == dsc.KindEOF {
		return w.WriteLine("%%" + dsc.NameEOF)
	}
	value, ok := d.RawValue()
	if !ok {
		return w.WriteLine("%%" + d.Name())
	}
	line := "%%" + d.Name() + ": " + value
	// First value character; a cut before it would land on the name/value
	// separator and put a spurious leading space into the reparsed value.
	prefixLen := len("%%"+d.Name()+":") + 1
	for len(line) > maxLineLen {
		cut := strings.LastIndexByte(line[:maxLineLen], ' ')
		// Step back over a run of spaces so the written segment does not
		// end in a space the reader would trim away.
		for cut > prefixLen && line[cut-1] == ' ' {
			cut--
		}
		if cut <= prefixLen {
			cut = maxLineLen
		}
		if err := w.WriteLine(line[:cut]); err != nil {
			return err
		}
		line = "%%+" + line[cut:]
		prefixLen = len("%%+")
	}
	return w.WriteLine(line)
}

// WriteLine writes one raw line with an LF terminator.
func (w *Writer) WriteLine(line string) error {
	if _, err := w.w.WriteString(line); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
