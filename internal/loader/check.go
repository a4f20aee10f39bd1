package loader

import "github.com/gwflow-labs/gwflow/internal/model"

// check runs lightweight consistency checks on a completed load and
// reports findings through the verbose writer and logger. It never
// fails the load.
func check(m *model.Model, opts *Options) {
	nlay, nrow, ncol, nper := m.Dims()
	if nlay == 0 {
		opts.printf("   check: no discretization dimensions available\n")
		opts.Logger.Warn("check: model has no grid dimensions")
	}
	if m.Structured && (nrow == 0 || ncol == 0) && nlay > 0 {
		opts.printf("   check: structured model with zero rows or columns\n")
	}
	if nper == 0 {
		opts.printf("   check: no stress periods defined\n")
	}
	if !m.HasPackage("BAS6") {
		opts.printf("   check: no basic package loaded\n")
	}
	if !m.HasPackage("OC") {
		opts.Logger.Info("check: no output control package; result files will not be located")
	}
	if m.LoadFailed {
		opts.printf("   check: one or more packages failed to load\n")
	}
}
