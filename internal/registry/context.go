package registry

import (
	"log/slog"
	"path/filepath"

	"github.com/gwflow-labs/gwflow/internal/namefile"
)

// Context is the manifest view handed to every package loader: the parsed
// name file, the entries not yet consumed by a loader, and the directory
// against which relative paths resolve. Loaders may look up sibling
// entries (e.g. an output unit named inside their own file) but must not
// mutate Remaining; claiming a unit goes through Model.ClaimUnit.
type Context struct {
	Dir       string
	NameFile  *namefile.NameFile
	Remaining map[int]*namefile.Entry
	Version   string
	Logger    *slog.Logger
}

// Resolve returns name joined onto the manifest directory, unless name is
// already absolute.
func (c *Context) Resolve(name string) string {
	if filepath.IsAbs(name) || c.Dir == "" {
		return name
	}
	return filepath.Join(c.Dir, name)
}
