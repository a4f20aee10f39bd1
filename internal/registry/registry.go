package registry

import (
	"sort"
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
)

// Loader loads one package file and returns the resulting package.
// Implementations open their own stream for path and must release it
// before returning, on failure paths included.
type Loader interface {
	Load(path string, m *model.Model, ctx *Context) (model.Package, error)
}

// CheckLoader is an optional upgrade of Loader for implementations that
// accept a check flag. The dispatcher type-asserts and calls LoadCheck
// with check disabled during model assembly; plain Loaders are called
// without it.
type CheckLoader interface {
	Loader
	LoadCheck(path string, m *model.Model, ctx *Context, check bool) (model.Package, error)
}

// Capability describes how the loader treats one file-type tag.
type Capability struct {
	// Loader parses files carrying this tag. Nil for tags that are
	// recognized but never dispatched (raw data tags).
	Loader Loader

	// Multiplex tags append to the model instead of replacing the
	// existing package (e.g. observation packages).
	Multiplex bool

	// PeekHeader asks the name-file parser to open the entry's file so
	// its header can be inspected before dispatch (the basic package's
	// FREE flag).
	PeekHeader bool

	// Version, when non-empty, reclassifies the model version if the tag
	// appears anywhere in the name file. Applied in a pre-pass before
	// load order is decided.
	Version string

	// Unstructured marks tags implying an unstructured grid.
	Unstructured bool
}

// Registry is the immutable mapping from file-type tag to capability.
// It is constructed once by the embedding application and may be shared
// across concurrent loads of independent models.
type Registry struct {
	caps map[string]Capability
}

// New builds a registry from a tag→capability map. The map is copied;
// later mutation of the argument does not affect the registry. Tags are
// case-insensitive.
func New(caps map[string]Capability) *Registry {
	r := &Registry{caps: make(map[string]Capability, len(caps))}
	for tag, cap := range caps {
		r.caps[strings.ToUpper(tag)] = cap
	}
	return r
}

// Get returns the capability registered for tag.
func (r *Registry) Get(tag string) (Capability, bool) {
	c, ok := r.caps[strings.ToUpper(tag)]
	return c, ok
}

// Loadable reports whether tag has a dispatchable loader.
func (r *Registry) Loadable(tag string) bool {
	c, ok := r.Get(tag)
	return ok && c.Loader != nil
}

// Tags returns every registered tag, sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.caps))
	for tag := range r.caps {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// PeekTypes returns the tags whose files the name-file parser should
// open for header inspection, in the form Parse expects.
func (r *Registry) PeekTypes() map[string]bool {
	peek := map[string]bool{}
	for tag, cap := range r.caps {
		if cap.PeekHeader {
			peek[tag] = true
		}
	}
	return peek
}
