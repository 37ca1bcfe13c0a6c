package comments

import "github.com/tsawler/pscript/dsc"

// Constructor creates a fresh, unparsed typed directive.
type Constructor func() dsc.TypedDirective

// Registry maps directive names to typed constructors. It implements
// dsc.Classifier. The zero value is not usable; use NewRegistry or Default.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds or replaces the constructor for a directive name.
func (r *Registry) Register(name string, ctor Constructor) {
	r.ctors[name] = ctor
}

// New implements dsc.Classifier.
func (r *Registry) New(name string) (dsc.TypedDirective, bool) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Default returns a registry populated with the standard DSC 3.0 comment
// catalog. The registry is freshly allocated, so callers may extend it
// without affecting others.
func Default() *Registry {
	r := NewRegistry()
	r.Register(dsc.NamePages, func() dsc.TypedDirective { return NewPages() })
	r.Register(dsc.NamePage, func() dsc.TypedDirective { return NewPage() })
	r.Register(dsc.NameBoundingBox, func() dsc.TypedDirective { return NewBoundingBox() })
	r.Register(dsc.NameHiResBoundingBox, func() dsc.TypedDirective { return NewHiResBoundingBox() })
	r.Register(dsc.NameLanguageLevel, func() dsc.TypedDirective { return NewLanguageLevel() })
	r.Register(dsc.NameTitle, func() dsc.TypedDirective { return NewTextComment(dsc.NameTitle) })
	r.Register(dsc.NameCreator, func() dsc.TypedDirective { return NewTextComment(dsc.NameCreator) })
	r.Register(dsc.NameCreationDate, func() dsc.TypedDirective { return NewTextComment(dsc.NameCreationDate) })
	r.Register(dsc.NameFor, func() dsc.TypedDirective { return NewTextComment(dsc.NameFor) })
	r.Register(dsc.NameCopyright, func() dsc.TypedDirective { return NewTextComment(dsc.NameCopyright) })
	r.Register(dsc.NameOrientation, func() dsc.TypedDirective { return NewOrientation() })
	r.Register(dsc.NamePageOrder, func() dsc.TypedDirective { return NewPageOrder() })
	r.Register(dsc.NameBeginDocument, func() dsc.TypedDirective { return NewBeginDocument() })
	r.Register(dsc.NameEndDocument, func() dsc.TypedDirective { return NewMarker(dsc.NameEndDocument) })
	r.Register(dsc.NameBeginProlog, func() dsc.TypedDirective { return NewMarker(dsc.NameBeginProlog) })
	r.Register(dsc.NameEndProlog, func() dsc.TypedDirective { return NewMarker(dsc.NameEndProlog) })
	r.Register(dsc.NameBeginSetup, func() dsc.TypedDirective { return NewMarker(dsc.NameBeginSetup) })
	r.Register(dsc.NameEndSetup, func() dsc.TypedDirective { return NewMarker(dsc.NameEndSetup) })
	r.Register(dsc.NameEndComments, func() dsc.TypedDirective { return NewMarker(dsc.NameEndComments) })
	r.Register(dsc.NameTrailer, func() dsc.TypedDirective { return NewMarker(dsc.NameTrailer) })
	r.Register(dsc.NameDocumentNeededResources, func() dsc.TypedDirective { return NewResourceList(dsc.NameDocumentNeededResources) })
	r.Register(dsc.NameDocumentSuppliedResources, func() dsc.TypedDirective { return NewResourceList(dsc.NameDocumentSuppliedResources) })
	r.Register(dsc.NameIncludeResource, func() dsc.TypedDirective { return NewIncludeResource() })
	return r
}
