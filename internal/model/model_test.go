package model

import (
	"strings"
	"testing"
)

type fakePkg struct {
	tag  string
	file string
}

func (p *fakePkg) FileType() string { return p.tag }
func (p *fakePkg) FileName() string { return p.file }

type fakeDis struct {
	fakePkg
	nlay, nrow, ncol, nper int
}

func (d *fakeDis) Dims() (int, int, int, int) { return d.nlay, d.nrow, d.ncol, d.nper }

type fakeBas struct {
	fakePkg
	free bool
}

func (b *fakeBas) FreeFormat() bool     { return b.free }
func (b *fakeBas) SetFreeFormat(v bool) { b.free = v }

func TestDims_NoDiscretization(t *testing.T) {
	m := New("test", ".")
	nlay, nrow, ncol, nper := m.Dims()
	if nlay != 0 || nrow != 0 || ncol != 0 || nper != 0 {
		t.Errorf("Dims() = %d,%d,%d,%d, want all zero without a discretization",
			nlay, nrow, ncol, nper)
	}
}

func TestDims_Delegates(t *testing.T) {
	m := New("test", ".")
	m.AddPackage(&fakeDis{fakePkg: fakePkg{tag: "DIS", file: "a.dis"}, nlay: 3, nrow: 40, ncol: 20, nper: 10}, false)

	if m.Nlay() != 3 || m.Nrow() != 40 || m.Ncol() != 20 || m.Nper() != 10 {
		t.Errorf("dims = %d,%d,%d,%d, want 3,40,20,10", m.Nlay(), m.Nrow(), m.Ncol(), m.Nper())
	}
}

func TestAddPackage_ExclusiveReplaces(t *testing.T) {
	m := New("test", ".")
	m.AddPackage(&fakePkg{tag: "WEL", file: "one.wel"}, false)
	m.AddPackage(&fakePkg{tag: "WEL", file: "two.wel"}, false)

	ps := m.Packages("WEL")
	if len(ps) != 1 {
		t.Fatalf("Packages(WEL) = %d entries, want 1", len(ps))
	}
	if ps[0].FileName() != "two.wel" {
		t.Errorf("exclusive tag kept %q, want the replacement", ps[0].FileName())
	}
}

func TestAddPackage_MultiplexAppends(t *testing.T) {
	m := New("test", ".")
	m.AddPackage(&fakePkg{tag: "GAGE", file: "one.gage"}, true)
	m.AddPackage(&fakePkg{tag: "GAGE", file: "two.gage"}, true)

	ps := m.Packages("GAGE")
	if len(ps) != 2 {
		t.Fatalf("Packages(GAGE) = %d entries, want 2", len(ps))
	}
	if ps[0].FileName() != "one.gage" || ps[1].FileName() != "two.gage" {
		t.Errorf("multiplex tag lost attachment order: %q, %q", ps[0].FileName(), ps[1].FileName())
	}
}

func TestFreeFormat_MirrorsBasicPackage(t *testing.T) {
	m := New("test", ".")
	if m.FreeFormat() {
		t.Error("FreeFormat() = true on a fresh model")
	}

	m.SetFreeFormat(true)
	if !m.FreeFormat() {
		t.Error("FreeFormat() = false after SetFreeFormat(true)")
	}

	bas := &fakeBas{fakePkg: fakePkg{tag: "BAS6", file: "a.bas"}}
	m.AddPackage(bas, false)

	// With a basic package attached its flag is authoritative both ways.
	if m.FreeFormat() {
		t.Error("FreeFormat() ignored the attached basic package")
	}
	m.SetFreeFormat(true)
	if !bas.free {
		t.Error("SetFreeFormat did not mirror onto the basic package")
	}
	if !m.FreeFormat() {
		t.Error("FreeFormat() = false after mirrored set")
	}
}

func TestExternalBindings(t *testing.T) {
	m := New("test", ".")
	m.AddExternal(ExternalBinding{Unit: 50, FileName: "out.bin", Binary: true})
	m.AddExternal(ExternalBinding{Unit: 50, FileName: "dup.bin"})

	if len(m.External) != 1 {
		t.Fatalf("External = %d bindings, want 1 (duplicate unit ignored)", len(m.External))
	}

	if !m.RemoveExternal(50) {
		t.Error("RemoveExternal(50) = false, want true")
	}
	if m.RemoveExternal(50) {
		t.Error("repeated RemoveExternal(50) = true, want no-op false")
	}
	if len(m.External) != 0 {
		t.Errorf("External = %d bindings after removal, want 0", len(m.External))
	}
}

func TestAddExternal_SkipsClaimedUnit(t *testing.T) {
	m := New("test", ".")
	m.ClaimUnit(51)
	m.AddExternal(ExternalBinding{Unit: 51, FileName: "a.hds", Binary: true})
	if len(m.External) != 0 {
		t.Error("AddExternal bound a claimed unit")
	}
}

func TestNextExternalUnit(t *testing.T) {
	m := New("test", ".")
	if u := m.NextExternalUnit(); u != 1000 {
		t.Errorf("first NextExternalUnit() = %d, want 1000", u)
	}
	if u := m.NextExternalUnit(); u != 1001 {
		t.Errorf("second NextExternalUnit() = %d, want 1001", u)
	}
}

func TestReportSummary(t *testing.T) {
	var r Report
	r.Success("ws/a.dis")
	r.Success("ws/a.bas")
	r.Failure("ws/a.wel")

	var sb strings.Builder
	r.Summary(&sb)
	out := sb.String()

	for _, want := range []string{
		"2 packages were successfully loaded",
		"1 packages were not loaded",
		"a.dis", "a.bas", "a.wel",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary output missing %q:\n%s", want, out)
		}
	}
}
