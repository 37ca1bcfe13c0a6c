// Package format provides file format detection for the pscript library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a recognized document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PostScript indicates a general PostScript document.
	PostScript
	// EPS indicates an Encapsulated PostScript document.
	EPS
	// PDF indicates a PDF document, which this library does not parse but
	// recognizes so callers can reject it with a useful message.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PostScript:
		return "PostScript"
	case EPS:
		return "EPS"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PostScript:
		return ".ps"
	case EPS:
		return ".eps"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ps", ".prn":
		return PostScript
	case ".eps", ".epsf":
		return EPS
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format. This is more
// reliable than extension-based detection. An EPS file is recognized by the
// "EPSF-" marker on its "%!PS-Adobe-x.x" version line.
func DetectFromMagic(data []byte) Format {
	if len(data) < 2 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	if data[0] != '%' || data[1] != '!' {
		return Unknown
	}

	// Only the first line decides between PS and EPS.
	line := data
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		line = data[:i]
	}
	if bytes.Contains(line, []byte("EPSF-")) {
		return EPS
	}
	return PostScript
}

// DetectFromReader reads the leading bytes of r to determine format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
