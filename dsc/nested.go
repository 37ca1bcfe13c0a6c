package dsc

import "fmt"

// DefaultNestedDocumentHandler skips embedded documents delimited by
// %%BeginDocument and %%EndDocument, honoring nesting. The skipped events,
// including the closing %%EndDocument, are forwarded to Writer when it is
// set, so an embedded document survives a copy-through unchanged.
type DefaultNestedDocumentHandler struct {
	Writer EventWriter

	skipping bool
}

// HandleEvent implements NestedDocumentHandler.
func (h *DefaultNestedDocumentHandler) HandleEvent(ev Event, p *Parser) error {
	if h.skipping {
		return nil
	}
	d, ok := ev.(Directive)
	if !ok || ev.Kind() != KindDirective || d.Name() != NameBeginDocument {
		return nil
	}

	// Events read here come back through this handler; the flag keeps the
	// inner invocations from starting a second skip.
	h.skipping = true
	defer func() { h.skipping = false }()

	depth := 1
	for depth > 0 {
		if !p.HasNext() {
			return fmt.Errorf("dsc: %%%%EndDocument not found for embedded document")
		}
		inner, err := p.NextEvent()
		if err != nil {
			return err
		}
		if inner.Kind() == KindDirective {
			switch inner.(Directive).Name() {
			case NameBeginDocument:
				depth++
			case NameEndDocument:
				depth--
			}
		}
		if h.Writer != nil {
			if err := h.Writer.WriteEvent(inner); err != nil {
				return err
			}
		}
	}
	return nil
}
