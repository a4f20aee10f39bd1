package packages

import (
	"strconv"
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// Stress is a generically loaded package: a boundary, stress, solver, or
// parameter package whose file format beyond identification is handled
// by the simulation engine, not here. The leading integer of the first
// data line (MXACT and friends) is kept when present.
type Stress struct {
	MaxItems int

	fileType string
	fileName string
}

func (s *Stress) FileType() string { return s.fileType }
func (s *Stress) FileName() string { return s.fileName }

// GenericLoader loads any package tag whose content this subsystem does
// not interpret. Loading verifies the file is present and readable, which
// is what the dispatcher's failure tolerance hinges on.
type GenericLoader struct {
	Tag string
}

// Load implements registry.Loader.
func (l GenericLoader) Load(path string, m *model.Model, ctx *registry.Context) (model.Package, error) {
	line, err := firstDataLineString(path)
	if err != nil {
		return nil, err
	}

	s := &Stress{fileType: strings.ToUpper(l.Tag), fileName: path}
	if fields := strings.Fields(line); len(fields) > 0 {
		if v, err := strconv.Atoi(fields[0]); err == nil && v >= 0 {
			s.MaxItems = v
		}
	}
	return s, nil
}
