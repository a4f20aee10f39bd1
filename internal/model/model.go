package model

import (
	"sort"
	"strings"
)

// Package is one loaded model component, parsed from its own file and
// attached to the model under its file-type tag.
type Package interface {
	FileType() string
	FileName() string
}

// Dimensioner is implemented by discretization packages that know the
// model grid dimensions.
type Dimensioner interface {
	Dims() (nlay, nrow, ncol, nper int)
}

// FreeFormatter is implemented by packages that own the free-format input
// flag (the basic package). The model mirrors its state through this
// interface.
type FreeFormatter interface {
	FreeFormat() bool
	SetFreeFormat(bool)
}

// ExternalBinding is a unit/file pair from the name file that no package
// claimed. It is carried on the model unchanged.
type ExternalBinding struct {
	Unit     int
	FileName string
	Binary   bool

	// Output marks a file the simulation writes rather than reads,
	// declared with the REPLACE option in the name file.
	Output bool
}

// Supported model version tags.
const (
	VersionMF2K    = "mf2k"
	VersionMF2005  = "mf2005"
	VersionMFNWT   = "mfnwt"
	VersionMFUSG   = "mfusg"
	DefaultVersion = VersionMF2005
)

// firstExternalUnit is where internally allocated external units start.
const firstExternalUnit = 1000

// defaultListUnit is the conventional unit for the listing file.
const defaultListUnit = 2

// Model is the composed simulation model: every loaded package, the
// external file bindings, and the bookkeeping of one load pass. It is
// created empty and populated incrementally; a failed package load never
// rolls back previously loaded packages.
type Model struct {
	Name       string
	Workspace  string
	Structured bool
	LoadFailed bool

	// Listing file binding, rewired when the name file declares one.
	ListUnit int
	ListFile string

	// Global file binding, mf2k models only.
	GlobalUnit int
	GlobalFile string

	External []ExternalBinding
	Report   Report

	version     string
	freeFormat  bool
	packages    map[string][]Package
	tagOrder    []string
	claimed     map[int]bool
	nextExtUnit int
}

// New returns an empty model rooted at the given workspace directory.
func New(name, workspace string) *Model {
	if workspace == "" {
		workspace = "."
	}
	return &Model{
		Name:        name,
		Workspace:   workspace,
		Structured:  true,
		ListUnit:    defaultListUnit,
		ListFile:    name + ".list",
		version:     DefaultVersion,
		packages:    map[string][]Package{},
		claimed:     map[int]bool{},
		nextExtUnit: firstExternalUnit,
	}
}

// Version returns the model version tag (mf2k, mf2005, mfnwt, mfusg).
func (m *Model) Version() string { return m.version }

// SetVersion sets the model version tag. Unknown tags are kept verbatim
// so embedding applications can extend the set.
func (m *Model) SetVersion(v string) {
	if v != "" {
		m.version = strings.ToLower(v)
	}
}

// AddPackage attaches a loaded package under its file-type tag. Exclusive
// tags replace any existing package; multiplex tags append.
func (m *Model) AddPackage(p Package, multiplex bool) {
	tag := strings.ToUpper(p.FileType())
	if _, seen := m.packages[tag]; !seen {
		m.tagOrder = append(m.tagOrder, tag)
	}
	if multiplex {
		m.packages[tag] = append(m.packages[tag], p)
		return
	}
	m.packages[tag] = []Package{p}
}

// Package returns the first package attached under tag, or nil.
func (m *Model) Package(tag string) Package {
	ps := m.packages[strings.ToUpper(tag)]
	if len(ps) == 0 {
		return nil
	}
	return ps[0]
}

// Packages returns every package attached under tag, in attachment order.
func (m *Model) Packages(tag string) []Package {
	return m.packages[strings.ToUpper(tag)]
}

// HasPackage reports whether any package is attached under tag.
func (m *Model) HasPackage(tag string) bool {
	return len(m.packages[strings.ToUpper(tag)]) > 0
}

// PackageTags returns the attached tags in attachment order.
func (m *Model) PackageTags() []string {
	tags := make([]string, len(m.tagOrder))
	copy(tags, m.tagOrder)
	return tags
}

// dis returns the discretization package, structured or not.
func (m *Model) dis() Package {
	if p := m.Package("DIS"); p != nil {
		return p
	}
	return m.Package("DISU")
}

// Dims returns the grid dimensions (nlay, nrow, ncol, nper), delegating
// to the discretization package. Without one it returns all zeros.
func (m *Model) Dims() (nlay, nrow, ncol, nper int) {
	if d, ok := m.dis().(Dimensioner); ok {
		return d.Dims()
	}
	return 0, 0, 0, 0
}

// Nlay returns the number of model layers, zero without a discretization.
func (m *Model) Nlay() int { n, _, _, _ := m.Dims(); return n }

// Nrow returns the number of model rows, zero without a discretization.
func (m *Model) Nrow() int { _, n, _, _ := m.Dims(); return n }

// Ncol returns the number of model columns, zero without a discretization.
func (m *Model) Ncol() int { _, _, n, _ := m.Dims(); return n }

// Nper returns the number of stress periods, zero without a discretization.
func (m *Model) Nper() int { _, _, _, n := m.Dims(); return n }

// FreeFormat reports whether array input is free format. The basic
// package's flag wins when one is attached.
func (m *Model) FreeFormat() bool {
	if ff, ok := m.Package("BAS6").(FreeFormatter); ok {
		return ff.FreeFormat()
	}
	return m.freeFormat
}

// SetFreeFormat sets the free-format input flag, mirroring it onto the
// basic package when one is attached.
func (m *Model) SetFreeFormat(v bool) {
	m.freeFormat = v
	if ff, ok := m.Package("BAS6").(FreeFormatter); ok {
		ff.SetFreeFormat(v)
	}
}

// AddExternal records an external file binding. A unit already bound or
// already claimed by a package is left alone.
func (m *Model) AddExternal(b ExternalBinding) {
	if m.claimed[b.Unit] {
		return
	}
	for _, x := range m.External {
		if x.Unit == b.Unit {
			return
		}
	}
	m.External = append(m.External, b)
}

// RemoveExternal drops the binding for a unit. It reports false when the
// unit was not bound; that is a consistency warning for the caller to
// log, not an error.
func (m *Model) RemoveExternal(unit int) bool {
	for i, x := range m.External {
		if x.Unit == unit {
			m.External = append(m.External[:i], m.External[i+1:]...)
			return true
		}
	}
	return false
}

// ClaimUnit marks a unit as consumed internally by a package after the
// fact (e.g. an output unit named inside the output-control file). The
// loader's cleanup pass removes claimed units from the external bindings.
func (m *Model) ClaimUnit(unit int) {
	m.claimed[unit] = true
}

// ClaimedUnits returns the claimed-after-the-fact units in ascending order.
func (m *Model) ClaimedUnits() []int {
	units := make([]int, 0, len(m.claimed))
	for u := range m.claimed {
		units = append(units, u)
	}
	sort.Ints(units)
	return units
}

// NextExternalUnit hands out the next internally allocated external unit
// number, starting at 1000.
func (m *Model) NextExternalUnit() int {
	u := m.nextExtUnit
	m.nextExtUnit++
	return u
}
