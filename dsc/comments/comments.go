package comments

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/pscript/dsc"
)

// base carries the pieces shared by every typed comment: the directive name
// and the raw value as it appeared in the document.
type base struct {
	name   string
	raw    string
	hasRaw bool
}

func newBase(name string) base { return base{name: name} }

// Kind returns dsc.KindDirective.
func (b *base) Kind() dsc.EventKind { return dsc.KindDirective }

// Name returns the directive name.
func (b *base) Name() string { return b.name }

// RawValue returns the unparsed value with continuation lines merged in.
func (b *base) RawValue() (string, bool) { return b.raw, b.hasRaw }

func (b *base) record(raw string, hasRaw bool) {
	b.raw, b.hasRaw = raw, hasRaw
}

// trimText strips the surrounding parentheses of a parenthesized text
// value, which DSC allows for values containing leading or trailing spaces.
func trimText(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}

// Pages is the %%Pages comment declaring the total page count.
type Pages struct {
	base
	Count int
}

// NewPages creates an unparsed %%Pages comment.
func NewPages() *Pages { return &Pages{base: newBase(dsc.NamePages)} }

// ParseValue implements dsc.TypedDirective.
func (d *Pages) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	fields := strings.Fields(raw)
	if !hasRaw || len(fields) == 0 {
		return errors.New("missing page count")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("invalid page count %q", fields[0])
	}
	d.Count = n
	return nil
}

// Page is the %%Page comment starting a page description. Label is the
// document's own page label, Ordinal the position of the page in the file,
// counting from 1.
type Page struct {
	base
	Label   string
	Ordinal int
}

// NewPage creates an unparsed %%Page comment.
func NewPage() *Page { return &Page{base: newBase(dsc.NamePage)} }

// ParseValue implements dsc.TypedDirective.
func (d *Page) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	fields := strings.Fields(raw)
	if !hasRaw || len(fields) == 0 {
		return errors.New("missing page label")
	}
	d.Label = trimText(fields[0])
	if len(fields) < 2 {
		// A single numeric token serves as both label and ordinal.
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return errors.New("missing page ordinal")
		}
		d.Ordinal = n
		return nil
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid page ordinal %q", fields[1])
	}
	d.Ordinal = n
	return nil
}

// BoundingBox is the %%BoundingBox comment: four integers giving the lower
// left and upper right corners of the document's bounding box in default
// user space units.
type BoundingBox struct {
	base
	LLX, LLY, URX, URY int
}

// NewBoundingBox creates an unparsed %%BoundingBox comment.
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{base: newBase(dsc.NameBoundingBox)}
}

// ParseValue implements dsc.TypedDirective.
func (d *BoundingBox) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	fields := strings.Fields(raw)
	if !hasRaw || len(fields) != 4 {
		return errors.New("expected four coordinates")
	}
	coords := make([]int, 4)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", f)
		}
		coords[i] = n
	}
	d.LLX, d.LLY, d.URX, d.URY = coords[0], coords[1], coords[2], coords[3]
	return nil
}

// HiResBoundingBox is the %%HiResBoundingBox comment, the floating point
// variant of %%BoundingBox.
type HiResBoundingBox struct {
	base
	LLX, LLY, URX, URY float64
}

// NewHiResBoundingBox creates an unparsed %%HiResBoundingBox comment.
func NewHiResBoundingBox() *HiResBoundingBox {
	return &HiResBoundingBox{base: newBase(dsc.NameHiResBoundingBox)}
}

// ParseValue implements dsc.TypedDirective.
func (d *HiResBoundingBox) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	fields := strings.Fields(raw)
	if !hasRaw || len(fields) != 4 {
		return errors.New("expected four coordinates")
	}
	coords := make([]float64, 4)
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", f)
		}
		coords[i] = n
	}
	d.LLX, d.LLY, d.URX, d.URY = coords[0], coords[1], coords[2], coords[3]
	return nil
}

// LanguageLevel is the %%LanguageLevel comment declaring the PostScript
// language level the document requires.
type LanguageLevel struct {
	base
	Level int
}

// NewLanguageLevel creates an unparsed %%LanguageLevel comment.
func NewLanguageLevel() *LanguageLevel {
	return &LanguageLevel{base: newBase(dsc.NameLanguageLevel)}
}

// ParseValue implements dsc.TypedDirective.
func (d *LanguageLevel) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	if !hasRaw || strings.TrimSpace(raw) == "" {
		return errors.New("missing language level")
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fmt.Errorf("invalid language level %q", raw)
	}
	d.Level = n
	return nil
}

// TextComment is a comment carrying free text, such as %%Title, %%Creator,
// %%CreationDate, %%For, and %%Copyright. Parenthesized values are
// unwrapped.
type TextComment struct {
	base
	Text string
}

// NewTextComment creates an unparsed text comment for the given name.
func NewTextComment(name string) *TextComment {
	return &TextComment{base: newBase(name)}
}

// ParseValue implements dsc.TypedDirective.
func (d *TextComment) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	if !hasRaw {
		return errors.New("missing text value")
	}
	d.Text = trimText(raw)
	return nil
}

// Orientation values.
const (
	OrientationPortrait  = "Portrait"
	OrientationLandscape = "Landscape"
)

// Orientation is the %%Orientation comment.
type Orientation struct {
	base
	Value string
}

// NewOrientation creates an unparsed %%Orientation comment.
func NewOrientation() *Orientation {
	return &Orientation{base: newBase(dsc.NameOrientation)}
}

// ParseValue implements dsc.TypedDirective.
func (d *Orientation) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	v := strings.TrimSpace(raw)
	if !hasRaw || v == "" {
		return errors.New("missing orientation")
	}
	switch v {
	case OrientationPortrait, OrientationLandscape:
		d.Value = v
		return nil
	}
	return fmt.Errorf("invalid orientation %q", v)
}

// PageOrder values.
const (
	PageOrderAscend  = "Ascend"
	PageOrderDescend = "Descend"
	PageOrderSpecial = "Special"
)

// PageOrder is the %%PageOrder comment declaring the order of page
// descriptions in the file.
type PageOrder struct {
	base
	Value string
}

// NewPageOrder creates an unparsed %%PageOrder comment.
func NewPageOrder() *PageOrder {
	return &PageOrder{base: newBase(dsc.NamePageOrder)}
}

// ParseValue implements dsc.TypedDirective.
func (d *PageOrder) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	v := strings.TrimSpace(raw)
	if !hasRaw || v == "" {
		return errors.New("missing page order")
	}
	switch v {
	case PageOrderAscend, PageOrderDescend, PageOrderSpecial:
		d.Value = v
		return nil
	}
	return fmt.Errorf("invalid page order %q", v)
}

// BeginDocument is the %%BeginDocument comment opening an embedded
// document. Version and Type are optional in the source.
type BeginDocument struct {
	base
	DocumentName string
	Version      string
	DocumentType string
}

// NewBeginDocument creates an unparsed %%BeginDocument comment.
func NewBeginDocument() *BeginDocument {
	return &BeginDocument{base: newBase(dsc.NameBeginDocument)}
}

// ParseValue implements dsc.TypedDirective.
func (d *BeginDocument) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	fields := strings.Fields(raw)
	if !hasRaw || len(fields) == 0 {
		return errors.New("missing document name")
	}
	d.DocumentName = trimText(fields[0])
	if len(fields) > 1 {
		d.Version = fields[1]
	}
	if len(fields) > 2 {
		d.DocumentType = fields[2]
	}
	return nil
}

// Marker is a structural comment with no value, such as %%EndComments,
// %%BeginProlog, %%EndProlog, %%Trailer, or %%EndDocument. A value, if
// present, is tolerated and kept raw.
type Marker struct {
	base
}

// NewMarker creates a marker comment for the given name.
func NewMarker(name string) *Marker {
	return &Marker{base: newBase(name)}
}

// ParseValue implements dsc.TypedDirective.
func (d *Marker) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	return nil
}
