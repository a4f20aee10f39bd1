//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gwflow-labs/gwflow/internal/loader"
	"github.com/gwflow-labs/gwflow/internal/packages"
	"github.com/gwflow-labs/gwflow/internal/results"
)

func TestFullModelLoad(t *testing.T) {
	ws := setupWorkspace(t)

	var sb strings.Builder
	m, err := loader.Load("sim.nam", packages.DefaultRegistry(), loader.Options{
		Workspace: ws,
		Verbose:   true,
		Check:     true,
		Out:       &sb,
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if m.LoadFailed {
		t.Fatalf("LoadFailed = true on a complete workspace; not loaded: %v", m.Report.NotLoaded)
	}

	// Every loadable package is attached.
	for _, tag := range []string{"DIS", "BAS6", "LPF", "WEL", "RIV", "OC", "PCG"} {
		if !m.HasPackage(tag) {
			t.Errorf("package %s missing from the model", tag)
		}
	}
	if got := len(m.Packages("GAGE")); got != 2 {
		t.Errorf("GAGE packages = %d, want 2 (multiplex tag)", got)
	}

	// Grid dimensions come from the discretization header.
	if nlay, nrow, ncol, nper := m.Dims(); nlay != 3 || nrow != 40 || ncol != 20 || nper != 12 {
		t.Errorf("Dims() = %d,%d,%d,%d, want 3,40,20,12", nlay, nrow, ncol, nper)
	}
	if !m.FreeFormat() {
		t.Error("FreeFormat() = false; BAS6 declares FREE")
	}

	// Unit 51 was reclaimed by output control; only 52 and 60 remain external.
	units := make([]int, 0, len(m.External))
	for _, b := range m.External {
		units = append(units, b.Unit)
	}
	if len(units) != 2 || units[0] != 52 || units[1] != 60 {
		t.Errorf("external units = %v, want [52 60]", units)
	}

	// The listing file was rebound and reported as not loaded.
	if m.ListUnit != 2 || m.ListFile != "sim.list" {
		t.Errorf("listing binding = %d/%s, want 2/sim.list", m.ListUnit, m.ListFile)
	}

	// Heading metadata survived for collaborators.
	out := sb.String()
	for _, want := range []string{"DIS", "package load...success", "packages were successfully loaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q", want)
		}
	}
}

func TestFullModelLoad_ResultFiles(t *testing.T) {
	ws := setupWorkspace(t)
	writeFile(t, ws, "sim.hds", "binary heads")
	writeFile(t, ws, "sim.cbc", "binary budget")

	m, err := loader.Load("sim.nam", packages.DefaultRegistry(), loader.Options{Workspace: ws})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	rf, err := results.Open(m)
	if err != nil {
		t.Fatalf("results.Open() error: %v", err)
	}
	defer rf.Close()

	if rf.Head == nil {
		t.Error("head file not opened despite SAVE HEAD and an existing file")
	}
	if rf.Budget == nil {
		t.Error("budget file not opened despite SAVE BUDGET and an existing file")
	}
	if rf.Head != nil && filepath.Base(rf.Head.Name()) != "sim.hds" {
		t.Errorf("head file = %s, want sim.hds", rf.Head.Name())
	}
}

func TestFullModelLoad_DegradedWorkspace(t *testing.T) {
	ws := setupWorkspace(t)
	// Knock out two stress package files; the rest of the model must
	// still assemble.
	for _, name := range []string{"sim.wel", "sim.riv"} {
		if err := os.Remove(filepath.Join(ws, name)); err != nil {
			t.Fatal(err)
		}
	}

	m, err := loader.Load("sim.nam", packages.DefaultRegistry(), loader.Options{Workspace: ws})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !m.LoadFailed {
		t.Error("LoadFailed = false after two package failures")
	}
	if m.HasPackage("WEL") || m.HasPackage("RIV") {
		t.Error("failed packages attached to the model")
	}
	if !m.HasPackage("DIS") || !m.HasPackage("LPF") {
		t.Error("surviving packages missing from the model")
	}
	if got := len(m.Report.NotLoaded); got != 3 { // wel, riv, and the listing file
		t.Errorf("NotLoaded = %v, want 3 entries", m.Report.NotLoaded)
	}
}
