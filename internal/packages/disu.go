package packages

import (
	"fmt"
	"strconv"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// Disu is the unstructured discretization package. Rows and columns do
// not apply; Dims reports them as zero.
type Disu struct {
	Nodes, Nlay, Njag, Nper int

	fileName string
}

func (d *Disu) FileType() string { return "DISU" }
func (d *Disu) FileName() string { return d.fileName }

// Dims returns the grid dimensions. Row and column counts are zero for
// an unstructured grid.
func (d *Disu) Dims() (nlay, nrow, ncol, nper int) {
	return d.Nlay, 0, 0, d.Nper
}

// DisuLoader loads the DISU package.
type DisuLoader struct{}

// Load implements registry.Loader. The DISU item-1 record reads
// NODES NLAY NJAG IVSD NPER ...; only those leading values are kept.
func (l DisuLoader) Load(path string, m *model.Model, ctx *registry.Context) (model.Package, error) {
	fields, err := firstDataLine(path)
	if err != nil {
		return nil, err
	}
	if len(fields) < 3 {
		return nil, fmt.Errorf("%s: unstructured discretization header needs NODES NLAY NJAG, got %d values", path, len(fields))
	}

	d := &Disu{fileName: path}
	ints := []*int{&d.Nodes, &d.Nlay, &d.Njag}
	for i, dst := range ints {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%s: discretization header value %q is not an integer", path, fields[i])
		}
		*dst = v
	}
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			d.Nper = v
		}
	}
	if d.Nodes <= 0 || d.Nlay <= 0 {
		return nil, fmt.Errorf("%s: non-positive grid size (%d nodes, %d layers)", path, d.Nodes, d.Nlay)
	}
	return d, nil
}
