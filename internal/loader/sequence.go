package loader

import (
	"sort"

	"github.com/gwflow-labs/gwflow/internal/namefile"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// structuralTags are the packages whose load failure always aborts: the
// discretization defines the grid every other package is read against,
// and the basic package defines the input format flags.
var structuralTags = map[string]bool{
	"DIS":  true,
	"DISU": true,
	"BAS6": true,
}

// sequence orders the claimed name-file entries for dispatch: the
// discretization entry first (required), the basic entry second so its
// format flags are visible to everything after it, then the remaining
// entries with a registered loader in declaration order. The allow-list
// is validated here, before any loader runs, against every manifest
// entry: a requested tag the manifest carries is satisfied even when no
// loader is registered for it, in which case the entry simply falls
// through to the reconciler as not loaded.
func sequence(nf *namefile.NameFile, reg *registry.Registry, only loadSet) ([]*namefile.Entry, error) {
	var dis, bas *namefile.Entry
	var rest []*namefile.Entry

	for _, e := range nf.Entries {
		switch {
		case e.FileType == "DIS" || e.FileType == "DISU":
			// Only the first discretization entry is dispatched; a
			// repeated one is reported as not loaded instead of
			// replacing the grid.
			if dis == nil {
				dis = e
			}
		case e.FileType == "BAS6" && bas == nil && reg.Loadable(e.FileType):
			bas = e
		case reg.Loadable(e.FileType):
			rest = append(rest, e)
		}
	}

	if dis == nil {
		return nil, &MissingDisError{NameFile: nf.Path}
	}

	if only != nil {
		inManifest := make(map[string]bool, len(nf.Entries))
		for _, e := range nf.Entries {
			inManifest[e.FileType] = true
		}
		var missing []string
		for tag := range only {
			if !structuralTags[tag] && !inManifest[tag] {
				missing = append(missing, tag)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return nil, &UnsatisfiedLoadError{Missing: missing}
		}
	}

	seq := make([]*namefile.Entry, 0, len(rest)+2)
	seq = append(seq, dis)
	if bas != nil {
		seq = append(seq, bas)
	}
	return append(seq, rest...), nil
}
