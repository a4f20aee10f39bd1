package packages

import (
	"strconv"
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// Oc is the output-control package. It declares which result files the
// simulation writes (heads, drawdowns, budgets) and on which units.
// Result-file contents are read elsewhere; this package only carries the
// declarations.
type Oc struct {
	SaveHead     bool
	SaveDrawdown bool
	SaveBudget   bool
	HeadUnit     int
	DrawdownUnit int

	fileName string
}

func (o *Oc) FileType() string { return "OC" }
func (o *Oc) FileName() string { return o.fileName }

// OcLoader loads the OC package.
type OcLoader struct{}

// Load implements registry.Loader. Output units named in the file are
// claimed on the model so the reconciler's cleanup pass removes them
// from the external bindings: the name file lists them as DATA(BINARY)
// entries, but once OC names them they are internal.
func (l OcLoader) Load(path string, m *model.Model, ctx *registry.Context) (model.Package, error) {
	o := &Oc{fileName: path}

	err := scanDataLines(path, func(line string) bool {
		words := strings.Fields(strings.ToUpper(line))
		joined := strings.Join(words, " ")

		switch {
		case strings.HasPrefix(joined, "HEAD SAVE UNIT"):
			if u, ok := trailingUnit(words); ok {
				o.HeadUnit = u
			}
		case strings.HasPrefix(joined, "DRAWDOWN SAVE UNIT"):
			if u, ok := trailingUnit(words); ok {
				o.DrawdownUnit = u
			}
		case strings.Contains(joined, "SAVE HEAD"):
			o.SaveHead = true
		case strings.Contains(joined, "SAVE DRAWDOWN"):
			o.SaveDrawdown = true
		case strings.Contains(joined, "SAVE BUDGET"):
			o.SaveBudget = true
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	if o.HeadUnit > 0 {
		m.ClaimUnit(o.HeadUnit)
	}
	if o.DrawdownUnit > 0 {
		m.ClaimUnit(o.DrawdownUnit)
	}
	return o, nil
}

// trailingUnit parses the last word of a record as a unit number.
func trailingUnit(words []string) (int, bool) {
	if len(words) == 0 {
		return 0, false
	}
	u, err := strconv.Atoi(words[len(words)-1])
	if err != nil || u <= 0 {
		return 0, false
	}
	return u, true
}
