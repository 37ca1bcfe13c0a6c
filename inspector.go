package pscript

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/pscript/dsc"
	"github.com/tsawler/pscript/dsc/comments"
	"github.com/tsawler/pscript/format"
	"github.com/tsawler/pscript/pswrite"
)

// Inspector provides fluent access to a PostScript document. Configuration
// methods return a new Inspector, so a configured Inspector can be reused
// as a template. Terminal operations (Info, Events, CopyTo, PageCount) open
// the input, run the parser, and return accumulated warnings alongside the
// result.
type Inspector struct {
	filename string
	r        io.Reader

	options InspectOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Inspector. This ensures immutability - each
// chain method returns a new instance.
func (in *Inspector) clone() *Inspector {
	return &Inspector{
		filename: in.filename,
		r:        in.r,
		options:  in.options.clone(),
		err:      in.err,
	}
}

// IgnoreComments installs a filter that drops ordinary PostScript comments
// from the event stream. Structured directives are unaffected.
func (in *Inspector) IgnoreComments() *Inspector {
	out := in.clone()
	out.options.ignoreComments = true
	return out
}

// SkipEmbeddedDocuments skips everything between %%BeginDocument and
// %%EndDocument, honoring nesting.
func (in *Inspector) SkipEmbeddedDocuments() *Inspector {
	out := in.clone()
	out.options.skipEmbedded = true
	return out
}

// WithClassifier replaces the standard directive catalog with a custom
// classifier. Passing nil disables typed directive parsing entirely.
func (in *Inspector) WithClassifier(c dsc.Classifier) *Inspector {
	out := in.clone()
	out.options.classifier = c
	return out
}

// open resolves the input. The returned closer is nil for reader-backed
// inspectors, whose lifecycle stays with the caller.
func (in *Inspector) open() (io.Reader, io.Closer, error) {
	if in.err != nil {
		return nil, nil, in.err
	}
	if in.r != nil {
		return in.r, nil, nil
	}
	f, err := os.Open(in.filename)
	if err != nil {
		return nil, nil, err
	}
	fm, err := format.DetectFromReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if fm != format.PostScript && fm != format.EPS {
		f.Close()
		return nil, nil, fmt.Errorf("%w: detected %s", ErrUnsupportedFormat, fm)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, f, nil
}

// embeddedDocFilter rejects everything between %%BeginDocument and
// %%EndDocument, both inclusive, honoring nesting. As a filter it makes the
// skipped region invisible to every consumer, delimiters included.
type embeddedDocFilter struct {
	depth int
}

func (f *embeddedDocFilter) Accept(ev dsc.Event) bool {
	if ev.Kind() == dsc.KindDirective {
		switch ev.(dsc.Directive).Name() {
		case dsc.NameBeginDocument:
			f.depth++
			return false
		case dsc.NameEndDocument:
			if f.depth > 0 {
				f.depth--
				return false
			}
		}
	}
	return f.depth == 0
}

// newParser builds a parser over r configured per the options.
func (in *Inspector) newParser(r io.Reader) (*dsc.Parser, error) {
	c := in.options.classifier
	if c == nil {
		c = comments.Default()
	}
	p, err := dsc.NewParserWithClassifier(r, c)
	if err != nil {
		return nil, err
	}

	var filters []dsc.Filter
	if in.options.ignoreComments {
		filters = append(filters, dsc.FilterFunc(func(ev dsc.Event) bool {
			return ev.Kind() != dsc.KindComment
		}))
	}
	if in.options.skipEmbedded {
		filters = append(filters, &embeddedDocFilter{})
	}
	switch len(filters) {
	case 0:
	case 1:
		p.SetFilter(filters[0])
	default:
		p.SetFilter(dsc.FilterFunc(func(ev dsc.Event) bool {
			for _, f := range filters {
				if !f.Accept(ev) {
					return false
				}
			}
			return true
		}))
	}
	return p, nil
}

// Events streams every event of the document to fn, in document order.
// Parsing stops at the first error fn returns.
func (in *Inspector) Events(fn func(dsc.Event) error) ([]Warning, error) {
	r, closer, err := in.open()
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	p, err := in.newParser(r)
	if err != nil {
		return nil, err
	}
	for p.HasNext() {
		ev, err := p.NextEvent()
		if err != nil {
			return p.Warnings(), err
		}
		if err := fn(ev); err != nil {
			return p.Warnings(), err
		}
	}
	return p.Warnings(), nil
}

// CopyTo copies the document to w, re-serializing every event. With
// IgnoreComments or SkipEmbeddedDocuments set, the corresponding events are
// left out of the copy.
func (in *Inspector) CopyTo(w io.Writer) ([]Warning, error) {
	r, closer, err := in.open()
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	out := pswrite.NewWriter(w)
	p, err := in.newParser(r)
	if err != nil {
		return nil, err
	}
	for p.HasNext() {
		ev, err := p.NextEvent()
		if err != nil {
			return p.Warnings(), err
		}
		if err := out.WriteEvent(ev); err != nil {
			return p.Warnings(), err
		}
	}
	return p.Warnings(), out.Flush()
}

// PageCount returns the page count declared by the %%Pages comment. It
// returns 0 when the document does not declare one.
func (in *Inspector) PageCount() (int, []Warning, error) {
	info, warnings, err := in.Info()
	if err != nil {
		return 0, warnings, err
	}
	return info.Pages, warnings, nil
}
