package dsc

import "fmt"

// Handler receives the event stream during push-mode parsing.
type Handler interface {
	// OnDocumentStart is called with the full header line, including the
	// "%!" prefix.
	OnDocumentStart(header string) error

	// OnDirective is called for every DSC comment except the end marker.
	OnDirective(d Directive) error

	// OnComment is called for every ordinary PostScript comment with the
	// text after the "%" prefix.
	OnComment(text string) error

	// OnContent is called for every plain PostScript line, verbatim.
	OnContent(line string) error

	// OnDocumentEnd is called when the %%EOF marker is reached.
	OnDocumentEnd() error
}

// ReadHeader consumes the next event and requires it to be the document's
// "%!" header comment. It returns ErrMissingHeader otherwise.
//
// Any "%!" line satisfies the check; DSC 3.0 conformance is not enforced,
// since plenty of real documents declare older versions or none at all.
// Callers that require it can test the result with PSAdobe30.
func (p *Parser) ReadHeader() (*HeaderComment, error) {
	if !p.HasNext() {
		return nil, ErrMissingHeader
	}
	ev, err := p.NextEvent()
	if err != nil {
		return nil, err
	}
	hc, ok := ev.(*HeaderComment)
	if !ok {
		return nil, ErrMissingHeader
	}
	return hc, nil
}

// Parse drives the parser in push mode, sending every event to the handler.
// The document must start with a "%!" header comment; it is validated and
// reported through OnDocumentStart before the main loop. As with ReadHeader,
// the header's version is not checked for DSC 3.0 conformance.
func (p *Parser) Parse(h Handler) error {
	header, err := p.ReadHeader()
	if err != nil {
		return err
	}
	if err := h.OnDocumentStart("%!" + header.Text); err != nil {
		return err
	}

	for p.HasNext() {
		ev, err := p.NextEvent()
		if err != nil {
			return err
		}
		switch ev.Kind() {
		case KindHeader:
			if err := h.OnDocumentStart("%!" + ev.(*HeaderComment).Text); err != nil {
				return err
			}
		case KindDirective:
			if err := h.OnDirective(ev.(Directive)); err != nil {
				return err
			}
		case KindComment:
			if err := h.OnComment(ev.(*Comment).Text); err != nil {
				return err
			}
		case KindContent:
			line, err := p.Line()
			if err != nil {
				return err
			}
			if err := h.OnContent(line); err != nil {
				return err
			}
		case KindEOF:
			if err := h.OnDocumentEnd(); err != nil {
				return err
			}
		default:
			// A parser bug, not a data error.
			panic(fmt.Sprintf("dsc: illegal event kind: %v", ev.Kind()))
		}
	}
	return nil
}

// NextDirectiveNamed advances to the next directive with the given name.
// Every other event encountered on the way is forwarded to sink when it is
// non-nil, so skipped content is not lost when copying a document through.
// It returns nil when the stream is exhausted first.
func (p *Parser) NextDirectiveNamed(name string, sink EventWriter) (Directive, error) {
	for p.HasNext() {
		ev, err := p.NextEvent()
		if err != nil {
			return nil, err
		}
		if d, ok := ev.(Directive); ok && ev.Kind() == KindDirective && d.Name() == name {
			return d, nil
		}
		if sink != nil {
			if err := sink.WriteEvent(ev); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

// NextCommentPrefix advances to the next ordinary PostScript comment whose
// text starts with the given prefix. This finds comments following the DSC
// extension mechanism, for example "Driver" matches "%DriverSetup". Every
// other event is forwarded to sink when it is non-nil. It returns nil when
// the stream is exhausted first.
func (p *Parser) NextCommentPrefix(prefix string, sink EventWriter) (*Comment, error) {
	for p.HasNext() {
		ev, err := p.NextEvent()
		if err != nil {
			return nil, err
		}
		if c, ok := ev.(*Comment); ok {
			if len(c.Text) >= len(prefix) && c.Text[:len(prefix)] == prefix {
				return c, nil
			}
		}
		if sink != nil {
			if err := sink.WriteEvent(ev); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}
