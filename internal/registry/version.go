package registry

import (
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/namefile"
)

// DetectVersion scans the raw manifest entries for version-indicating
// capabilities and returns the reclassified model version plus whether
// the grid is structured. It runs as a pre-pass, before load order is
// decided, so a solver or flow package deep in the name file can switch
// the model version the whole load operates under. The fallback version
// is kept when no tag says otherwise.
//
// A GLOBAL (or GLO) output entry marks an mf2k model even though no
// loader is registered for it; that rule lives here rather than in a
// capability.
func (r *Registry) DetectVersion(entries []*namefile.Entry, fallback string) (version string, structured bool) {
	version = fallback
	if version == "" {
		version = model.DefaultVersion
	}
	structured = true

	for _, e := range entries {
		switch strings.ToUpper(e.FileType) {
		case "GLOBAL", "GLO":
			version = model.VersionMF2K
			continue
		}
		c, ok := r.Get(e.FileType)
		if !ok {
			continue
		}
		if c.Version != "" {
			version = c.Version
		}
		if c.Unstructured {
			structured = false
		}
	}
	return version, structured
}
