// Package results locates and opens the result files a completed model
// run produced, based on the output-control package's save flags. It
// only opens them — binary head and budget contents are read by
// downstream tooling, not here.
package results

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/packages"
	"github.com/maseology/mmio"
)

// Default result-file extensions.
const (
	headExt       = "hds"
	drawdownExt   = "ddn"
	budgetExt     = "cbc"
	subsidenceExt = "subsidence.hds"
)

// Files holds the opened result files of one model run. Fields are nil
// when the output control did not ask for the file or it does not exist
// on disk. The caller owns the handles and must Close them.
type Files struct {
	Head       *os.File
	Drawdown   *os.File
	Budget     *os.File
	Subsidence *os.File

	HeadPath     string
	DrawdownPath string
	BudgetPath   string
}

// Close releases every open handle. Safe on a zero Files.
func (f *Files) Close() error {
	var first error
	for _, h := range []*os.File{f.Head, f.Drawdown, f.Budget, f.Subsidence} {
		if h == nil {
			continue
		}
		if err := h.Close(); err != nil && first == nil {
			first = err
		}
	}
	f.Head, f.Drawdown, f.Budget, f.Subsidence = nil, nil, nil, nil
	return first
}

// Open inspects the model's output-control package and opens whichever
// result files it saved. A model without output control yields a zero
// Files value: the save flags default to off rather than being guessed.
func Open(m *model.Model) (*Files, error) {
	f := &Files{
		HeadPath:     filepath.Join(m.Workspace, m.Name+"."+headExt),
		DrawdownPath: filepath.Join(m.Workspace, m.Name+"."+drawdownExt),
		BudgetPath:   filepath.Join(m.Workspace, m.Name+"."+budgetExt),
	}

	oc, ok := m.Package("OC").(*packages.Oc)
	if !ok {
		return f, nil
	}

	var err error
	if oc.SaveHead {
		if f.Head, err = openIfPresent(f.HeadPath); err != nil {
			return nil, err
		}
	}
	if oc.SaveDrawdown {
		if f.Drawdown, err = openIfPresent(f.DrawdownPath); err != nil {
			return nil, err
		}
	}
	if oc.SaveBudget {
		if f.Budget, err = openIfPresent(f.BudgetPath); err != nil {
			return nil, err
		}
	}

	// Subsidence heads are written by the SUB package, when present.
	if m.HasPackage("SUB") {
		sub := filepath.Join(m.Workspace, m.Name+"."+subsidenceExt)
		if f.Subsidence, err = openIfPresent(sub); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// openIfPresent opens path when it exists; a missing file is not an
// error, the run may simply not have been made yet.
func openIfPresent(path string) (*os.File, error) {
	if _, ok := mmio.FileExists(path); !ok {
		return nil, nil
	}
	h, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result file %s: %w", path, err)
	}
	return h, nil
}
