package loader

import (
	"fmt"
	"strings"
)

// MissingDisError reports a name file with no discretization entry.
// A model cannot be assembled without one; this is always fatal.
type MissingDisError struct {
	NameFile string
}

func (e *MissingDisError) Error() string {
	return fmt.Sprintf("name file %s has no discretization (DIS or DISU) entry", e.NameFile)
}

// UnsatisfiedLoadError reports allow-list tags that are absent from the
// name file. Raised before any package loader runs.
type UnsatisfiedLoadError struct {
	Missing []string
}

func (e *UnsatisfiedLoadError) Error() string {
	return fmt.Sprintf("load-only entries not found in the name file: %s",
		strings.Join(e.Missing, ", "))
}

// PackageLoadError reports a package loader failure with the offending
// file attached. Fatal for the discretization and basic packages in any
// mode, and for every package in strict mode; otherwise recorded on the
// model and suppressed.
type PackageLoadError struct {
	FileType string
	FileName string
	Err      error
}

func (e *PackageLoadError) Error() string {
	return fmt.Sprintf("loading %s package from %s: %v", e.FileType, e.FileName, e.Err)
}

func (e *PackageLoadError) Unwrap() error { return e.Err }
