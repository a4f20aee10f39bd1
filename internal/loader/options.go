package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
)

// Options controls one load operation. The zero value means forgiving
// mode, the default model version, and progress output to stdout when
// Verbose is set.
type Options struct {
	// Workspace is the directory the name file and every entry path
	// resolve against. Defaults to the name file's directory.
	Workspace string

	// Version is the model version assumed before the name-file pre-pass
	// reclassifies it. Defaults to mf2005.
	Version string

	// LoadOnly restricts loading to the named package tags. The
	// discretization and basic packages always load. Tags named here but
	// absent from the name file fail the load before any loader runs.
	LoadOnly []string

	// Strict aborts the whole load on any package failure. Off, the
	// default, records non-structural failures and keeps going.
	Strict bool

	// Check runs model consistency checks after a completed load.
	Check bool

	// Verbose emits a per-package success/failure line and the final
	// summary to Out.
	Verbose bool

	Out    io.Writer
	Logger *slog.Logger
}

func (o *Options) setDefaults() {
	if o.Version == "" {
		o.Version = model.DefaultVersion
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// printf writes a progress line when verbose output is on.
func (o *Options) printf(format string, args ...any) {
	if o.Verbose {
		fmt.Fprintf(o.Out, format, args...)
	}
}

// loadSet is the normalized allow-list; empty means load everything.
type loadSet map[string]bool

func newLoadSet(tags []string) loadSet {
	if len(tags) == 0 {
		return nil
	}
	s := make(loadSet, len(tags))
	for _, t := range tags {
		s[strings.ToUpper(t)] = true
	}
	return s
}

func (s loadSet) wants(tag string) bool {
	return s == nil || s[strings.ToUpper(tag)]
}
