package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/namefile"
	"github.com/gwflow-labs/gwflow/internal/registry"
)

// Load assembles a model from a name file. The registry decides which
// file-type tags are loadable; opts selects strict or forgiving mode,
// an optional allow-list, and verbosity.
//
// In forgiving mode (the default) a non-structural package failure is
// recorded on the model's report, the model's LoadFailed flag is set,
// and the load continues. Discretization and basic package failures
// abort in either mode. The returned model is never partially rolled
// back: packages loaded before a fatal error are simply discarded with
// it.
func Load(name string, reg *registry.Registry, opts Options) (*model.Model, error) {
	opts.setDefaults()
	log := opts.Logger

	path := name
	if opts.Workspace != "" && !filepath.IsAbs(path) {
		path = filepath.Join(opts.Workspace, path)
	}
	workspace := opts.Workspace
	if workspace == "" {
		workspace = filepath.Dir(path)
	}
	base := filepath.Base(path)
	modelName := strings.TrimSuffix(base, filepath.Ext(base))

	opts.printf("\nCreating new model with name: %s\n%s\n\n", modelName, strings.Repeat("-", 50))

	m := model.New(modelName, workspace)
	m.SetVersion(opts.Version)

	nf, err := namefile.Parse(path, reg.PeekTypes())
	if err != nil {
		return nil, err
	}
	defer nf.Close()

	// Version reclassification pre-pass: a solver or flow package
	// anywhere in the name file can switch the model version before any
	// load order is decided.
	version, structured := reg.DetectVersion(nf.Entries, m.Version())
	m.SetVersion(version)
	m.Structured = structured
	log.Debug("name file parsed", "entries", len(nf.Entries), "version", version)

	rebindOutputFiles(m, nf)

	// Sniff the basic package's FREE flag before anything loads so the
	// packages sequenced after it read numeric input correctly. The BAS6
	// loader re-reads it authoritatively.
	if bas, ok := basEntry(nf); ok {
		free, err := bas.PeekFreeFormat()
		if err != nil {
			log.Warn("free-format peek failed", "file", bas.FileName, "error", err)
		} else if free {
			m.SetFreeFormat(true)
		}
		opts.printf("BAS6 free format:%v\n\n", m.FreeFormat())
	}

	only := newLoadSet(opts.LoadOnly)
	seq, err := sequence(nf, reg, only)
	if err != nil {
		return nil, err
	}

	remaining := map[int]*namefile.Entry{}
	for _, e := range nf.Entries {
		remaining[e.Unit] = e
	}
	ctx := &registry.Context{
		Dir:       workspace,
		NameFile:  nf,
		Remaining: remaining,
		Version:   m.Version(),
		Logger:    log,
	}

	for _, e := range seq {
		structural := structuralTags[e.FileType]
		if !structural && !only.wants(e.FileType) {
			opts.printf("   %-4s package load...skipped\n", e.FileType)
			m.Report.Failure(e.FileName)
			delete(remaining, e.Unit)
			continue
		}

		cap, _ := reg.Get(e.FileType)
		if cap.Loader == nil {
			// Reachable only for a discretization entry the caller's
			// registry has no loader for; a model cannot be assembled
			// around it.
			return nil, &PackageLoadError{FileType: e.FileType, FileName: e.FileName,
				Err: fmt.Errorf("no loader registered for %s entries", e.FileType)}
		}
		pkg, err := dispatch(cap.Loader, ctx.Resolve(e.FileName), m, ctx)
		if err != nil {
			if structural || opts.Strict {
				return nil, &PackageLoadError{FileType: e.FileType, FileName: e.FileName, Err: err}
			}
			m.LoadFailed = true
			m.Report.Failure(e.FileName)
			delete(remaining, e.Unit)
			opts.printf("   %-4s package load...failed\n   %v\n", e.FileType, err)
			log.Warn("package load failed", "tag", e.FileType, "file", e.FileName, "error", err)
			continue
		}

		m.AddPackage(pkg, cap.Multiplex)
		m.Report.Success(e.FileName)
		delete(remaining, e.Unit)
		opts.printf("   %-4s package load...success\n", pkg.FileType())
	}

	reconcile(m, nf, remaining, &opts)
	cleanup(m, remaining, &opts)

	if opts.Verbose {
		m.Report.Summary(opts.Out)
	}
	if opts.Check {
		check(m, &opts)
	}
	return m, nil
}

// dispatch invokes a loader, preferring the check-aware form when the
// implementation offers one. Model assembly always disables checking;
// callers wanting it run it after the load.
func dispatch(l registry.Loader, path string, m *model.Model, ctx *registry.Context) (model.Package, error) {
	if cl, ok := l.(registry.CheckLoader); ok {
		return cl.LoadCheck(path, m, ctx, false)
	}
	return l.Load(path, m, ctx)
}

// basEntry finds the basic package entry, if the name file has one.
func basEntry(nf *namefile.NameFile) (*namefile.Entry, bool) {
	for _, e := range nf.Entries {
		if e.FileType == "BAS6" {
			return e, true
		}
	}
	return nil, false
}

// rebindOutputFiles rewires the model's listing (and, for mf2k, global)
// file bindings to the units the name file declares. The entries stay in
// the manifest set and are reported as not loaded, matching their
// standing as engine-owned output files.
func rebindOutputFiles(m *model.Model, nf *namefile.NameFile) {
	for _, e := range nf.Entries {
		switch e.FileType {
		case "LIST":
			m.ListUnit = e.Unit
			m.ListFile = filepath.Base(e.FileName)
		case "GLOBAL":
			if m.Version() == model.VersionMF2K {
				m.GlobalUnit = e.Unit
				m.GlobalFile = filepath.Base(e.FileName)
			}
		}
	}
}
