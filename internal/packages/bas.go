package packages

import (
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// Bas is the basic package (BAS6). Its options line declares flags that
// affect how every subsequently loaded package reads numeric input,
// which is why the loader sequences it right after the discretization.
type Bas struct {
	Options  []string
	Ifrefm   bool // FREE: arrays are free-format
	Ixsec    bool // XSECTION: model is a 1-row cross section
	Ichflg   bool // CHTOCH: flow between adjacent constant-head cells
	fileName string
}

func (b *Bas) FileType() string { return "BAS6" }
func (b *Bas) FileName() string { return b.fileName }

// FreeFormat implements model.FreeFormatter.
func (b *Bas) FreeFormat() bool { return b.Ifrefm }

// SetFreeFormat implements model.FreeFormatter.
func (b *Bas) SetFreeFormat(v bool) { b.Ifrefm = v }

// BasLoader loads the BAS6 package.
type BasLoader struct{}

// Load implements registry.Loader.
func (l BasLoader) Load(path string, m *model.Model, ctx *registry.Context) (model.Package, error) {
	return l.LoadCheck(path, m, ctx, false)
}

// LoadCheck implements registry.CheckLoader.
func (l BasLoader) LoadCheck(path string, m *model.Model, ctx *registry.Context, check bool) (model.Package, error) {
	line, err := firstDataLineString(path)
	if err != nil {
		return nil, err
	}

	b := &Bas{fileName: path}
	for _, opt := range strings.Fields(strings.ToUpper(line)) {
		b.Options = append(b.Options, opt)
		switch opt {
		case "FREE":
			b.Ifrefm = true
		case "XSECTION":
			b.Ixsec = true
		case "CHTOCH":
			b.Ichflg = true
		}
	}

	// The model-level flag may have been set from the name-file peek;
	// the parsed options line is authoritative.
	m.SetFreeFormat(b.Ifrefm)
	return b, nil
}
