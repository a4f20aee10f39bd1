package packages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// Dis is the structured discretization package. Only the header is
// parsed; array data beyond package identification is out of scope.
type Dis struct {
	Nlay, Nrow, Ncol, Nper int
	Itmuni, Lenuni         int

	fileName string
}

func (d *Dis) FileType() string { return "DIS" }
func (d *Dis) FileName() string { return d.fileName }

// Dims returns the model grid dimensions.
func (d *Dis) Dims() (nlay, nrow, ncol, nper int) {
	return d.Nlay, d.Nrow, d.Ncol, d.Nper
}

// DisLoader loads the DIS package.
type DisLoader struct{}

// Load implements registry.Loader.
func (l DisLoader) Load(path string, m *model.Model, ctx *registry.Context) (model.Package, error) {
	return l.LoadCheck(path, m, ctx, false)
}

// LoadCheck implements registry.CheckLoader. The check flag is accepted
// for interface parity and currently ignored beyond header validation.
func (l DisLoader) LoadCheck(path string, m *model.Model, ctx *registry.Context, check bool) (model.Package, error) {
	fields, err := firstDataLine(path)
	if err != nil {
		return nil, err
	}
	if len(fields) < 4 {
		return nil, fmt.Errorf("%s: discretization header needs NLAY NROW NCOL NPER, got %d values", path, len(fields))
	}

	d := &Dis{fileName: path}
	ints := []*int{&d.Nlay, &d.Nrow, &d.Ncol, &d.Nper, &d.Itmuni, &d.Lenuni}
	for i, dst := range ints {
		if i >= len(fields) {
			break
		}
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%s: discretization header value %q is not an integer", path, fields[i])
		}
		*dst = v
	}
	if d.Nlay <= 0 || d.Nrow <= 0 || d.Ncol <= 0 {
		return nil, fmt.Errorf("%s: non-positive grid dimensions %d x %d x %d", path, d.Nlay, d.Nrow, d.Ncol)
	}
	return d, nil
}

// firstDataLine opens a package file and returns the whitespace-split
// fields of its first non-comment line. The file handle is released
// before returning.
func firstDataLine(path string) ([]string, error) {
	line, err := firstDataLineString(path)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}
