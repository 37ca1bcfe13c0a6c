package dsc

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// maxConformingLineLen is the longest line a fully conforming DSC document
// may contain. Longer lines are tolerated with a warning.
const maxConformingLineLen = 255

// Classifier maps a directive name to a typed directive constructor.
// Implementations are explicit registries populated at startup and injected
// into the parser; see the comments subpackage for the standard catalog.
type Classifier interface {
	// New returns a fresh typed directive for the given name, or false
	// when no constructor is registered.
	New(name string) (TypedDirective, bool)
}

// Filter is an accept/reject predicate over produced events. Rejected
// events are skipped transparently and are never observable by any caller,
// including the nested-document handler.
type Filter interface {
	Accept(Event) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(Event) bool

// Accept implements Filter.
func (f FilterFunc) Accept(ev Event) bool { return f(ev) }

// NestedDocumentHandler is invoked once per promoted current event. It may
// drive the parser forward itself, for example to skip an embedded
// sub-document, before returning.
type NestedDocumentHandler interface {
	HandleEvent(ev Event, p *Parser) error
}

// EventWriter consumes events verbatim. It is the replay collaborator the
// seeking operations forward skipped events to; the pswrite package
// provides the standard implementation.
type EventWriter interface {
	WriteEvent(Event) error
}

// Parser is a streaming parser for DSC-compliant PostScript documents. It
// is a pull parser with a one-event lookahead, and can act as a push parser
// through the Handler interface.
//
// The parser borrows the input stream and never closes it. It holds mutable
// cursor state and is not safe for concurrent use.
type Parser struct {
	src        *lineReader
	current    Event
	next       Event
	eofSeen    bool
	classifier Classifier
	filter     Filter
	nested     NestedDocumentHandler
	warnings   []Warning
}

// NewParser creates a parser reading from r and performs the first
// read-ahead, returning any error Next would. Without a classifier every
// directive is produced as a RawDirective.
//
// The input is decoded as Latin-1, the single-byte superset of the ASCII
// encoding DSC documents are written in.
func NewParser(r io.Reader) (*Parser, error) {
	return NewParserWithClassifier(r, nil)
}

// NewParserWithClassifier creates a parser that dispatches directive names
// through the given classifier. A nil classifier disables typed parsing.
func NewParserWithClassifier(r io.Reader, c Classifier) (*Parser, error) {
	p := &Parser{
		src:        newLineReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder())),
		classifier: c,
	}
	if err := p.parseNext(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetFilter installs a filter for produced events, or removes it when nil.
// The filter applies from the next read-ahead onward.
func (p *Parser) SetFilter(f Filter) {
	p.filter = f
}

// SetNestedDocumentHandler installs a handler used to skip or specially
// process nested documents such as embedded EPS files, or removes it when
// nil.
func (p *Parser) SetNestedDocumentHandler(h NestedDocumentHandler) {
	p.nested = h
}

// Warnings returns the non-fatal conformance findings collected so far.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// HasNext reports whether another event is available.
func (p *Parser) HasNext() bool {
	return p.next != nil
}

// Peek returns the lookahead event without consuming it, or nil when the
// stream is exhausted.
func (p *Parser) Peek() Event {
	return p.next
}

// CurrentEvent returns the current event, or nil before the first advance.
func (p *Parser) CurrentEvent() Event {
	return p.current
}

// Next promotes the lookahead to current, computes the new lookahead,
// invokes the nested-document handler on the newly current event, and
// returns the current event's kind. It returns ErrNoMoreEvents when the
// stream is already exhausted.
func (p *Parser) Next() (EventKind, error) {
	if !p.HasNext() {
		return 0, ErrNoMoreEvents
	}
	p.current = p.next
	if err := p.parseNext(); err != nil {
		return 0, err
	}
	if p.nested != nil {
		if err := p.nested.HandleEvent(p.current, p); err != nil {
			return 0, err
		}
	}
	return p.current.Kind(), nil
}

// NextEvent advances like Next and returns the current event. Note that a
// nested-document handler may have driven the parser further; the event
// returned is whatever is current after it ran.
func (p *Parser) NextEvent() (Event, error) {
	if _, err := p.Next(); err != nil {
		return nil, err
	}
	return p.current, nil
}

// Line returns the raw text of the current event if it is a plain content
// line, and ErrNotContentLine otherwise.
func (p *Parser) Line() (string, error) {
	cl, ok := p.current.(*ContentLine)
	if !ok {
		return "", ErrNotContentLine
	}
	return cl.Text, nil
}

// readLine reads one line, enforcing the end-of-file invariant and the
// conforming line length.
func (p *Parser) readLine() (string, bool, error) {
	line, ok, err := p.src.ReadLine()
	if err != nil {
		return "", false, err
	}
	if !ok {
		if !p.eofSeen {
			return "", false, ErrMissingEOF
		}
		return "", false, nil
	}
	if utf8.RuneCountInString(line) > maxConformingLineLen {
		p.warnings = append(p.warnings, Warning{
			Message: fmt.Sprintf("line longer than %d characters, the document is not fully conforming", maxConformingLineLen),
		})
	}
	return line, true, nil
}

// parseNext computes the new lookahead event. Events rejected by an
// installed filter are skipped in a loop so that a long run of rejected
// lines cannot grow the stack.
func (p *Parser) parseNext() error {
	for {
		line, ok, err := p.readLine()
		if err != nil {
			return err
		}
		if !ok {
			p.next = nil
			return nil
		}
		if p.eofSeen && len(line) > 0 {
			return ErrContentAfterEOF
		}

		var ev Event
		switch {
		case strings.HasPrefix(line, "%%"):
			d, err := p.parseDirective(line)
			if err != nil {
				return err
			}
			if d.Kind() == KindEOF {
				p.eofSeen = true
			}
			ev = d
		case strings.HasPrefix(line, "%!"):
			ev = &HeaderComment{Text: line[2:]}
		case strings.HasPrefix(line, "%"):
			ev = &Comment{Text: line[1:]}
		default:
			ev = &ContentLine{Text: line}
		}

		if p.filter != nil && !p.filter.Accept(ev) {
			continue
		}
		p.next = ev
		return nil
	}
}

// parseDirective splits a "%%" line into name and value, merges "%%+"
// continuation lines into the value, and dispatches the name through the
// classifier.
func (p *Parser) parseDirective(line string) (Directive, error) {
	var name, value string
	hasValue := false

	// The colon must leave room for the "%%" prefix and at least one
	// name character.
	colon := strings.IndexByte(line, ':')
	if colon > 2 {
		name = line[2:colon]
		rest := line[colon+1:]
		if len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
			rest = rest[1:]
		}
		value = strings.TrimRight(rest, " \t")
		hasValue = true

		if value == Atend {
			return NewAtendDirective(name), nil
		}

		// Merge continuation lines. The first line lacking the "%%+"
		// prefix is rolled back so it is re-read as an independent
		// event.
		for {
			next, ok, err := p.readLine()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			if !strings.HasPrefix(next, "%%+") {
				p.src.Unread(next)
				break
			}
			value += next[3:]
		}
	} else {
		name = line[2:]
	}

	return p.classifyDirective(name, value, hasValue)
}

// classifyDirective turns a split directive line into the right directive
// variant.
func (p *Parser) classifyDirective(name, value string, hasValue bool) (Directive, error) {
	if name == NameEOF {
		return &EOFDirective{}, nil
	}
	if p.classifier != nil {
		if td, ok := p.classifier.New(name); ok {
			if err := td.ParseValue(value, hasValue); err != nil {
				return nil, &MalformedValueError{Name: name, Err: err}
			}
			return td, nil
		}
	}
	return NewRawDirective(name, value, hasValue), nil
}
