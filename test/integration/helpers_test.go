//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// setupWorkspace builds a synthetic but complete model workspace: a name
// file covering every entry class (structural packages, stress packages,
// solver, output control, raw data, engine output) plus the package
// files it references. Returns the workspace directory.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	ws := t.TempDir()

	writeFile(t, ws, "sim.nam", `# Synthetic valley model
# xul:0.0, yul:10000.0, rotation:0.0 ;start_datetime:1-1-2016
LIST           2  sim.list
DIS           10  sim.dis
BAS6          11  sim.bas
LPF           12  sim.lpf
WEL           13  sim.wel
RIV           14  sim.riv
GAGE          15  gage1.gage
GAGE          16  gage2.gage
OC            20  sim.oc
PCG           21  sim.pcg
DATA(BINARY)  51  sim.hds REPLACE
DATA(BINARY)  52  sim.cbc REPLACE
DATA          60  sim.obs
`)

	writeFile(t, ws, "sim.dis", "# discretization\n 3 40 20 12 4 2\nCONSTANT 250.0\n")
	writeFile(t, ws, "sim.bas", "# basic package\nFREE\nINTERNAL 1 (FREE) -1\n")
	writeFile(t, ws, "sim.lpf", "# layer property flow\n 0 -1e30 0\n")
	writeFile(t, ws, "sim.wel", "# wells\n 12 50\n")
	writeFile(t, ws, "sim.riv", "# river reaches\n 40 0\n")
	writeFile(t, ws, "gage1.gage", "# gage\n 1 -37 1\n")
	writeFile(t, ws, "gage2.gage", "# gage\n 2 -38 1\n")
	writeFile(t, ws, "sim.oc", "HEAD SAVE UNIT 51\nPERIOD 1 STEP 1\n  SAVE HEAD\n  SAVE BUDGET\n")
	writeFile(t, ws, "sim.pcg", "# solver\n 50 30 1\n")

	return ws
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
