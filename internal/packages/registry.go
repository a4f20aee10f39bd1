package packages

import (
	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// genericTags are the package tags loaded by GenericLoader: boundary and
// stress packages, solvers, flow packages, parameter files, observation
// and output hookups. Tags that reclassify the model version or imply an
// unstructured grid get their capability adjusted below.
var genericTags = []string{
	"WEL", "DRN", "RIV", "GHB", "CHD", "FHB", "RCH", "EVT",
	"LPF", "BCF6", "UPW", "HFB6", "SWI2", "UZF",
	"NWT", "SMS", "PCG", "PCGN", "SIP", "SOR", "DE4", "GMG", "PKS",
	"SFR", "LAK", "STR", "MNW2", "MNWI",
	"SUB", "SWT", "LMT6", "LMT7",
	"ZONE", "MULT", "PVAL",
	"GAGE", "HOB", "HYD",
}

// multiplexTags append to the model rather than replacing the attached
// package: several of these can appear in one name file.
var multiplexTags = map[string]bool{
	"GAGE": true,
	"HOB":  true,
	"HYD":  true,
}

// DefaultRegistry returns the registry for the standard MODFLOW family
// of package tags. Embedding applications wanting a different set build
// their own registry.New map, typically starting from this one.
func DefaultRegistry() *registry.Registry {
	caps := map[string]registry.Capability{
		"DIS":  {Loader: DisLoader{}},
		"DISU": {Loader: DisuLoader{}, Version: model.VersionMFUSG, Unstructured: true},
		"BAS6": {Loader: BasLoader{}, PeekHeader: true},
		"OC":   {Loader: OcLoader{}},
	}
	for _, tag := range genericTags {
		caps[tag] = registry.Capability{
			Loader:    GenericLoader{Tag: tag},
			Multiplex: multiplexTags[tag],
		}
	}

	// Version-indicating tags: their presence anywhere in the name file
	// reclassifies the model before load order is decided.
	for tag, version := range map[string]string{
		"NWT": model.VersionMFNWT,
		"UPW": model.VersionMFNWT,
		"SMS": model.VersionMFUSG,
	} {
		c := caps[tag]
		c.Version = version
		caps[tag] = c
	}

	return registry.New(caps)
}
