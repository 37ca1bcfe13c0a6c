package dsc

import (
	"errors"
	"strings"
	"testing"
)

const wellFormed = "%!PS-Adobe-3.0\n" +
	"%%Title: Example\n" +
	"%%EndComments\n" +
	"% just a comment\n" +
	"0 0 moveto\n" +
	"showpage\n" +
	"%%EOF\n"

func mustParser(t *testing.T, input string) *Parser {
	t.Helper()
	p, err := NewParser(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

// drain advances until the stream is exhausted, returning the events and
// the first error.
func drain(p *Parser) ([]Event, error) {
	var events []Event
	for p.HasNext() {
		ev, err := p.NextEvent()
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func TestParserEventStream(t *testing.T) {
	p := mustParser(t, wellFormed)
	events, err := drain(p)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}

	wantKinds := []EventKind{
		KindHeader, KindDirective, KindDirective, KindComment,
		KindContent, KindContent, KindEOF,
	}
	if len(events) != len(wantKinds) {
		t.Fatalf("got %d events, want %d", len(events), len(wantKinds))
	}
	for i, ev := range events {
		if ev.Kind() != wantKinds[i] {
			t.Errorf("event %d kind = %v, want %v", i, ev.Kind(), wantKinds[i])
		}
	}

	if p.HasNext() {
		t.Errorf("HasNext() = true after the %%%%EOF event")
	}
}

func TestParserEventPayloads(t *testing.T) {
	p := mustParser(t, wellFormed)

	ev, err := p.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	hc, ok := ev.(*HeaderComment)
	if !ok {
		t.Fatalf("first event is %T, want *HeaderComment", ev)
	}
	if hc.Text != "PS-Adobe-3.0" {
		t.Errorf("header text = %q, want %q", hc.Text, "PS-Adobe-3.0")
	}
	if !hc.PSAdobe30() {
		t.Error("PSAdobe30() = false")
	}

	ev, _ = p.NextEvent()
	d, ok := ev.(Directive)
	if !ok {
		t.Fatalf("second event is %T, want Directive", ev)
	}
	if d.Name() != "Title" {
		t.Errorf("directive name = %q, want Title", d.Name())
	}
	if v, ok := d.RawValue(); !ok || v != "Example" {
		t.Errorf("directive value = %q, %v, want Example", v, ok)
	}
}

func TestParserMissingEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"content only", "%!PS-Adobe-3.0\nshowpage\n"},
		{"cut mid document", "%!PS-Adobe-3.0\n%%Pages: 3\n0 0 moveto\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(strings.NewReader(tt.input))
			if err == nil {
				_, err = drain(p)
			}
			if !errors.Is(err, ErrMissingEOF) {
				t.Errorf("error = %v, want ErrMissingEOF", err)
			}
		})
	}
}

func TestParserContentAfterEOF(t *testing.T) {
	p := mustParser(t, "%!PS\n%%EOF\nmore content\n")
	_, err := drain(p)
	if !errors.Is(err, ErrContentAfterEOF) {
		t.Errorf("error = %v, want ErrContentAfterEOF", err)
	}
}

// Trailing empty lines after %%EOF are tolerated; this is a deliberate
// reading of the conventions, which only forbid trailing content.
func TestParserBlankLinesAfterEOF(t *testing.T) {
	p := mustParser(t, "%!PS\n%%EOF\n\n\n")
	events, err := drain(p)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	// The blank lines are delivered as empty content events.
	if events[len(events)-1].Kind() != KindContent {
		t.Errorf("last event kind = %v, want KindContent", events[len(events)-1].Kind())
	}
}

func TestParserNoMoreEvents(t *testing.T) {
	p := mustParser(t, "%%EOF\n")
	if _, err := drain(p); err != nil {
		t.Fatalf("drain: %v", err)
	}
	kind, err := p.Next()
	if !errors.Is(err, ErrNoMoreEvents) {
		t.Errorf("Next() past the end = %v, want ErrNoMoreEvents", err)
	}
	// The kind on the error path must not look like a real classification.
	switch kind {
	case KindHeader, KindDirective, KindComment, KindContent, KindEOF:
		t.Errorf("Next() past the end returned valid kind %v", kind)
	}
}

func TestParserLine(t *testing.T) {
	p := mustParser(t, "%!PS\ncontent here\n%%EOF\n")

	p.Next()
	if _, err := p.Line(); !errors.Is(err, ErrNotContentLine) {
		t.Errorf("Line() on header = %v, want ErrNotContentLine", err)
	}

	p.Next()
	line, err := p.Line()
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if line != "content here" {
		t.Errorf("Line() = %q, want %q", line, "content here")
	}
}

func TestParserPeekIdempotent(t *testing.T) {
	p := mustParser(t, wellFormed)

	first := p.Peek()
	for i := 0; i < 5; i++ {
		if got := p.Peek(); got != first {
			t.Fatalf("Peek() call %d returned a different event", i)
		}
		if !p.HasNext() {
			t.Fatal("Peek() changed HasNext()")
		}
	}

	ev, err := p.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	if ev != first {
		t.Error("NextEvent() returned a different event than Peek()")
	}
}

func TestParserContinuation(t *testing.T) {
	p := mustParser(t, "%%Title: Hello\n%%+ World\nnext line\n%%EOF\n")

	ev, err := p.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	d := ev.(Directive)
	if d.Name() != "Title" {
		t.Fatalf("name = %q, want Title", d.Name())
	}
	v, _ := d.RawValue()
	if v != "Hello World" {
		t.Errorf("value = %q, want %q", v, "Hello World")
	}

	// The line after the continuation block is its own independent event.
	ev, err = p.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	cl, ok := ev.(*ContentLine)
	if !ok || cl.Text != "next line" {
		t.Errorf("event after continuation = %#v, want content %q", ev, "next line")
	}
}

func TestParserContinuationMultiple(t *testing.T) {
	p := mustParser(t, "%%DocumentNeededResources: font Helvetica\n%%+ font Times-Roman\n%%+ font Courier\n%%EOF\n")

	ev, err := p.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	v, _ := ev.(Directive).RawValue()
	want := "font Helvetica font Times-Roman font Courier"
	if v != want {
		t.Errorf("value = %q, want %q", v, want)
	}
}

func TestParserAtend(t *testing.T) {
	p := mustParser(t, "%%Pages: (atend)\n%%EOF\n")

	ev, err := p.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	at, ok := ev.(*AtendDirective)
	if !ok {
		t.Fatalf("event is %T, want *AtendDirective", ev)
	}
	if at.Name() != "Pages" {
		t.Errorf("name = %q, want Pages", at.Name())
	}
	if v, ok := at.RawValue(); !ok || v != Atend {
		t.Errorf("RawValue() = %q, %v, want %q", v, ok, Atend)
	}
}

func TestParserDirectiveWithoutValue(t *testing.T) {
	p := mustParser(t, "%%EndComments\n%%EOF\n")

	ev, _ := p.NextEvent()
	d := ev.(Directive)
	if d.Name() != "EndComments" {
		t.Errorf("name = %q, want EndComments", d.Name())
	}
	if _, ok := d.RawValue(); ok {
		t.Error("RawValue() reported a value for a bare directive")
	}
}

// A colon that leaves no room for a name character does not split the line.
func TestParserColonNeedsName(t *testing.T) {
	p := mustParser(t, "%%:odd\n%%EOF\n")

	ev, _ := p.NextEvent()
	d := ev.(Directive)
	if d.Name() != ":odd" {
		t.Errorf("name = %q, want %q", d.Name(), ":odd")
	}
	if _, ok := d.RawValue(); ok {
		t.Error("RawValue() reported a value")
	}
}

func TestParserFilter(t *testing.T) {
	input := "%!PS\n" +
		"% comment one\n" +
		"content\n" +
		"%%Pages: 3\n" +
		"% comment two\n" +
		"%%EOF\n"
	p := mustParser(t, input)
	p.SetFilter(FilterFunc(func(ev Event) bool {
		return ev.Kind() != KindComment
	}))

	events, err := drain(p)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	wantKinds := []EventKind{KindHeader, KindContent, KindDirective, KindEOF}
	if len(events) != len(wantKinds) {
		t.Fatalf("got %d events, want %d", len(events), len(wantKinds))
	}
	for i, ev := range events {
		if ev.Kind() == KindComment {
			t.Fatal("a rejected comment became observable")
		}
		if ev.Kind() != wantKinds[i] {
			t.Errorf("event %d kind = %v, want %v", i, ev.Kind(), wantKinds[i])
		}
	}
}

// A long run of rejected lines must not grow the stack: filtering is a
// loop, not recursion.
func TestParserFilterLongRun(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("%!PS\n")
	for i := 0; i < 100000; i++ {
		sb.WriteString("% rejected\n")
	}
	sb.WriteString("%%EOF\n")

	p := mustParser(t, sb.String())
	p.SetFilter(FilterFunc(func(ev Event) bool {
		return ev.Kind() != KindComment
	}))
	events, err := drain(p)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
}

// recordingSink collects forwarded events.
type recordingSink struct {
	events []Event
}

func (s *recordingSink) WriteEvent(ev Event) error {
	s.events = append(s.events, ev)
	return nil
}

func TestNextDirectiveNamed(t *testing.T) {
	p := mustParser(t, "%!PS\n%%Comment\nfoo\n%%Pages: 3\n%%EOF\n")
	sink := &recordingSink{}

	d, err := p.NextDirectiveNamed("Pages", sink)
	if err != nil {
		t.Fatalf("NextDirectiveNamed: %v", err)
	}
	if d == nil || d.Name() != "Pages" {
		t.Fatalf("directive = %v, want Pages", d)
	}
	if v, _ := d.RawValue(); v != "3" {
		t.Errorf("value = %q, want 3", v)
	}

	// Header, the Comment directive, and the content line were forwarded
	// in order; the returned directive was not.
	wantKinds := []EventKind{KindHeader, KindDirective, KindContent}
	if len(sink.events) != len(wantKinds) {
		t.Fatalf("sink got %d events, want %d", len(sink.events), len(wantKinds))
	}
	for i, ev := range sink.events {
		if ev.Kind() != wantKinds[i] {
			t.Errorf("sink event %d kind = %v, want %v", i, ev.Kind(), wantKinds[i])
		}
	}
}

func TestNextDirectiveNamedNotFound(t *testing.T) {
	p := mustParser(t, "%!PS\n%%EOF\n")
	d, err := p.NextDirectiveNamed("Pages", nil)
	if err != nil {
		t.Fatalf("NextDirectiveNamed: %v", err)
	}
	if d != nil {
		t.Errorf("directive = %v, want nil", d)
	}
}

func TestNextCommentPrefix(t *testing.T) {
	p := mustParser(t, "%!PS\n% plain\n%DriverSetup begin\n%%EOF\n")

	c, err := p.NextCommentPrefix("Driver", nil)
	if err != nil {
		t.Fatalf("NextCommentPrefix: %v", err)
	}
	if c == nil || !strings.HasPrefix(c.Text, "DriverSetup") {
		t.Fatalf("comment = %v, want DriverSetup prefix", c)
	}
}

func TestParserLongLineWarning(t *testing.T) {
	long := strings.Repeat("x", 300)
	p := mustParser(t, "%!PS\n"+long+"\n%%EOF\n")
	if _, err := drain(p); err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(p.Warnings()) == 0 {
		t.Error("expected a warning for a line longer than 255 characters")
	}
}

// classifierFunc adapts a function to the Classifier interface for tests.
type classifierFunc func(name string) (TypedDirective, bool)

func (f classifierFunc) New(name string) (TypedDirective, bool) { return f(name) }

// failingDirective rejects every value.
type failingDirective struct {
	RawDirective
}

func (d *failingDirective) ParseValue(raw string, hasRaw bool) error {
	return errors.New("bad value")
}

func TestParserMalformedValue(t *testing.T) {
	c := classifierFunc(func(name string) (TypedDirective, bool) {
		if name == "Pages" {
			return &failingDirective{}, true
		}
		return nil, false
	})
	_, err := NewParserWithClassifier(strings.NewReader("%%Pages: nonsense\n%%EOF\n"), c)

	var mv *MalformedValueError
	if !errors.As(err, &mv) {
		t.Fatalf("error = %v, want *MalformedValueError", err)
	}
	if mv.Name != "Pages" {
		t.Errorf("Name = %q, want Pages", mv.Name)
	}
}

func TestParserEOFWithClassifier(t *testing.T) {
	// %%EOF never goes through the classifier.
	c := classifierFunc(func(name string) (TypedDirective, bool) {
		t.Errorf("classifier consulted for %q", name)
		return nil, false
	})
	p, err := NewParserWithClassifier(strings.NewReader("%%EOF\n"), c)
	if err != nil {
		t.Fatalf("NewParserWithClassifier: %v", err)
	}
	ev, err := p.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	if ev.Kind() != KindEOF {
		t.Errorf("kind = %v, want KindEOF", ev.Kind())
	}
}
