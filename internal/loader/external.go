package loader

import (
	"path/filepath"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/namefile"
)

// reconcile classifies every manifest entry no loader consumed. Raw data
// entries become external bindings on the model; anything else — an
// unregistered tag, or an engine-owned file like the listing — is
// recorded as not loaded. Declaration order is preserved.
func reconcile(m *model.Model, nf *namefile.NameFile, remaining map[int]*namefile.Entry, opts *Options) {
	for _, e := range nf.Entries {
		if _, left := remaining[e.Unit]; !left {
			continue
		}
		if e.IsData() {
			opts.printf("   %s file load...skipped\n      %s\n", e.FileType, filepath.Base(e.FileName))
			m.AddExternal(model.ExternalBinding{
				Unit:     e.Unit,
				FileName: e.FileName,
				Binary:   e.IsBinary(),
				Output:   e.Replace,
			})
			continue
		}
		opts.printf("   %-4s package load...skipped\n", e.FileType)
		m.Report.Failure(e.FileName)
	}
}

// cleanup removes units that packages claimed after the fact (output
// units named inside the output-control file, for instance) from both
// the external bindings and the remaining manifest set. A claimed unit
// with no binding is logged and ignored; the claim may predate any
// binding or repeat an earlier removal.
func cleanup(m *model.Model, remaining map[int]*namefile.Entry, opts *Options) {
	for _, unit := range m.ClaimedUnits() {
		removed := m.RemoveExternal(unit)
		_, present := remaining[unit]
		if !removed && !present {
			opts.Logger.Warn("claimed unit has no external binding", "unit", unit)
		}
		delete(remaining, unit)
	}
}
