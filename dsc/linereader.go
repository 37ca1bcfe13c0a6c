package dsc

import (
	"bufio"
	"io"
	"strings"
)

// lineReader reads lines terminated by LF, CR, or CRLF and supports
// unreading a single line. The unread slot is the only rollback the
// continuation scan ever needs; no general seeking is required.
type lineReader struct {
	br     *bufio.Reader
	pushed *string
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator. ok is false once
// the stream is exhausted.
func (lr *lineReader) ReadLine() (line string, ok bool, err error) {
	if lr.pushed != nil {
		line = *lr.pushed
		lr.pushed = nil
		return line, true, nil
	}

	var sb strings.Builder
	for {
		b, err := lr.br.ReadByte()
		if err == io.EOF {
			if sb.Len() == 0 {
				return "", false, nil
			}
			return sb.String(), true, nil
		}
		if err != nil {
			return "", false, err
		}

		switch b {
		case '\n':
			return sb.String(), true, nil
		case '\r':
			// Swallow the LF of a CRLF pair.
			if next, err := lr.br.Peek(1); err == nil && next[0] == '\n' {
				lr.br.ReadByte()
			}
			return sb.String(), true, nil
		default:
			sb.WriteByte(b)
		}
	}
}

// Unread pushes a line back so the next ReadLine redelivers it. Only one
// line may be pending at a time.
func (lr *lineReader) Unread(line string) {
	lr.pushed = &line
}
