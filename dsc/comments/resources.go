package comments

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/pscript/dsc"
)

// Resource types DSC 3.0 defines for the resource comments.
const (
	ResourceFont     = "font"
	ResourceFile     = "file"
	ResourceProcSet  = "procset"
	ResourcePattern  = "pattern"
	ResourceForm     = "form"
	ResourceEncoding = "encoding"
)

func isResourceType(s string) bool {
	switch s {
	case ResourceFont, ResourceFile, ResourceProcSet, ResourcePattern,
		ResourceForm, ResourceEncoding:
		return true
	}
	return false
}

// Resource is one resource group of a resource comment: a resource type
// followed by the named resources of that type.
type Resource struct {
	Type  string
	Names []string
}

// ResourceList is a resource listing comment such as
// %%DocumentNeededResources or %%DocumentSuppliedResources. The value is a
// sequence of resource groups, each introduced by a resource type keyword;
// groups routinely spill onto %%+ continuation lines, which the parser has
// already merged by the time ParseValue runs.
type ResourceList struct {
	base
	Resources []Resource
}

// NewResourceList creates an unparsed resource listing comment for the
// given name.
func NewResourceList(name string) *ResourceList {
	return &ResourceList{base: newBase(name)}
}

// ParseValue implements dsc.TypedDirective.
func (d *ResourceList) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	fields := strings.Fields(raw)
	if !hasRaw || len(fields) == 0 {
		return errors.New("missing resource list")
	}
	var cur *Resource
	for _, f := range fields {
		if isResourceType(f) {
			d.Resources = append(d.Resources, Resource{Type: f})
			cur = &d.Resources[len(d.Resources)-1]
			continue
		}
		if cur == nil {
			return fmt.Errorf("resource name %q before any resource type", f)
		}
		cur.Names = append(cur.Names, f)
	}
	return nil
}

// IncludeResource is the %%IncludeResource comment requesting a single
// resource at inclusion point.
type IncludeResource struct {
	base
	Resource Resource
}

// NewIncludeResource creates an unparsed %%IncludeResource comment.
func NewIncludeResource() *IncludeResource {
	return &IncludeResource{base: newBase(dsc.NameIncludeResource)}
}

// ParseValue implements dsc.TypedDirective.
func (d *IncludeResource) ParseValue(raw string, hasRaw bool) error {
	d.record(raw, hasRaw)
	fields := strings.Fields(raw)
	if !hasRaw || len(fields) < 2 {
		return errors.New("expected resource type and name")
	}
	if !isResourceType(fields[0]) {
		return fmt.Errorf("invalid resource type %q", fields[0])
	}
	d.Resource = Resource{Type: fields[0], Names: fields[1:]}
	return nil
}
