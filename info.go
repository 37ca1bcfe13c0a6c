package pscript

import (
	"github.com/tsawler/pscript/dsc"
	"github.com/tsawler/pscript/dsc/comments"
)

// BoundingBox is a document bounding box in default user space units.
type BoundingBox struct {
	LLX, LLY, URX, URY int
}

// DocumentInfo is the metadata a document declares through its DSC header
// and trailer comments. String fields are empty and numeric fields zero
// when the corresponding comment is absent.
type DocumentInfo struct {
	// Header is the full "%!" version line.
	Header string

	// DSC30 reports whether the header declares DSC 3.0 conformance.
	DSC30 bool

	Title        string
	Creator      string
	CreationDate string
	For          string
	Copyright    string

	// Pages is the declared page count from %%Pages.
	Pages int

	// PageLabels lists the labels of the %%Page comments in file order.
	PageLabels []string

	LanguageLevel int
	Orientation   string
	PageOrder     string
	BoundingBox   *BoundingBox
}

// infoCollector assembles a DocumentInfo from the push-mode event stream.
// A directive declared "(atend)" in the header is simply left unset until
// its trailer occurrence overwrites it.
type infoCollector struct {
	info DocumentInfo
}

func (c *infoCollector) OnDocumentStart(header string) error {
	c.info.Header = header
	c.info.DSC30 = (&dsc.HeaderComment{Text: header[2:]}).PSAdobe30()
	return nil
}

func (c *infoCollector) OnDirective(d dsc.Directive) error {
	switch d := d.(type) {
	case *comments.Pages:
		c.info.Pages = d.Count
	case *comments.Page:
		c.info.PageLabels = append(c.info.PageLabels, d.Label)
	case *comments.TextComment:
		switch d.Name() {
		case dsc.NameTitle:
			c.info.Title = d.Text
		case dsc.NameCreator:
			c.info.Creator = d.Text
		case dsc.NameCreationDate:
			c.info.CreationDate = d.Text
		case dsc.NameFor:
			c.info.For = d.Text
		case dsc.NameCopyright:
			c.info.Copyright = d.Text
		}
	case *comments.LanguageLevel:
		c.info.LanguageLevel = d.Level
	case *comments.Orientation:
		c.info.Orientation = d.Value
	case *comments.PageOrder:
		c.info.PageOrder = d.Value
	case *comments.BoundingBox:
		c.info.BoundingBox = &BoundingBox{LLX: d.LLX, LLY: d.LLY, URX: d.URX, URY: d.URY}
	}
	return nil
}

func (c *infoCollector) OnComment(text string) error { return nil }
func (c *infoCollector) OnContent(line string) error { return nil }
func (c *infoCollector) OnDocumentEnd() error        { return nil }

// Info parses the document in push mode and returns the metadata it
// declares. Directives deferred with "(atend)" are resolved from the
// trailer.
func (in *Inspector) Info() (*DocumentInfo, []Warning, error) {
	r, closer, err := in.open()
	if err != nil {
		return nil, nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	p, err := in.newParser(r)
	if err != nil {
		return nil, nil, err
	}
	collector := &infoCollector{}
	if err := p.Parse(collector); err != nil {
		return nil, p.Warnings(), err
	}
	return &collector.info, p.Warnings(), nil
}
