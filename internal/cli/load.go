package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gwflow-labs/gwflow/internal/config"
	"github.com/gwflow-labs/gwflow/internal/loader"
	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/packages"
	"github.com/gwflow-labs/gwflow/internal/results"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	loadWorkspace string
	loadVersion   string
	loadOnly      []string
	loadStrict    bool
	loadCheck     bool
	loadQuiet     bool
	loadReport    string
	loadResults   bool
	loadDebug     bool
)

var loadCmd = &cobra.Command{
	Use:   "load <namefile>",
	Short: "Assemble a model from a name file",
	Long: `Load every package the name file declares and report the outcome.
By default the load is forgiving: a package that fails to parse is recorded
and skipped. Use --strict to abort on the first failure instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVarP(&loadWorkspace, "workspace", "w", "", "Directory the name file and entry paths resolve against")
	loadCmd.Flags().StringVar(&loadVersion, "version", "", "Model version to assume (mf2k, mf2005, mfnwt, mfusg)")
	loadCmd.Flags().StringSliceVar(&loadOnly, "load-only", nil, "Package tags to load; everything else is skipped")
	loadCmd.Flags().BoolVar(&loadStrict, "strict", false, "Abort on any package load failure")
	loadCmd.Flags().BoolVar(&loadCheck, "check", false, "Run consistency checks after loading")
	loadCmd.Flags().BoolVarP(&loadQuiet, "quiet", "q", false, "Suppress per-package progress lines")
	loadCmd.Flags().StringVar(&loadReport, "report", "", "Write a YAML load report to this file")
	loadCmd.Flags().BoolVar(&loadResults, "results", false, "Open result files declared by output control")
	loadCmd.Flags().BoolVar(&loadDebug, "debug", false, "Enable debug logging to stderr")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	verbose := !loadQuiet
	if !cmd.Flags().Changed("quiet") && config.IsSet(config.KeyVerbose) {
		verbose = config.GetBool(config.KeyVerbose)
	}

	opts := loader.Options{
		Workspace: loadWorkspace,
		Version:   loadVersion,
		LoadOnly:  loadOnly,
		Strict:    loadStrict || config.GetBool(config.KeyStrict),
		Check:     loadCheck,
		Verbose:   verbose,
		Out:       cmd.OutOrStdout(),
	}
	if opts.Version == "" {
		opts.Version = config.Get(config.KeyVersion)
	}
	if loadDebug {
		opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	m, err := loader.Load(args[0], packages.DefaultRegistry(), opts)
	if err != nil {
		var unsat *loader.UnsatisfiedLoadError
		if errors.As(err, &unsat) {
			return fmt.Errorf("nothing loaded: %w", err)
		}
		return err
	}

	printModel(cmd.OutOrStdout(), m)

	if loadReport != "" {
		if err := writeReport(loadReport, m); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", loadReport)
	}

	if loadResults {
		rf, err := results.Open(m)
		if err != nil {
			return fmt.Errorf("opening result files: %w", err)
		}
		defer rf.Close()
		printResults(cmd.OutOrStdout(), rf)
	}

	if m.LoadFailed {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: one or more packages failed to load (see report).")
	}
	return nil
}

func printModel(w io.Writer, m *model.Model) {
	nlay, nrow, ncol, nper := m.Dims()
	fmt.Fprintf(w, "\n%s model %q: %d layer(s), %d row(s), %d column(s), %d stress period(s)\n",
		m.Version(), m.Name, nlay, nrow, ncol, nper)
	if len(m.External) > 0 {
		fmt.Fprintf(w, "%d external file binding(s):\n", len(m.External))
		for _, b := range m.External {
			kind := "text"
			if b.Binary {
				kind = "binary"
			}
			fmt.Fprintf(w, "   unit %4d  %-6s %s\n", b.Unit, kind, b.FileName)
		}
	}
}

func printResults(w io.Writer, rf *results.Files) {
	for _, f := range []*os.File{rf.Head, rf.Drawdown, rf.Budget, rf.Subsidence} {
		if f != nil {
			fmt.Fprintf(w, "Opened result file %s\n", filepath.Base(f.Name()))
		}
	}
}

// loadReportDoc is the YAML shape of the --report export.
type loadReportDoc struct {
	Model      string   `yaml:"model"`
	Version    string   `yaml:"version"`
	LoadFailed bool     `yaml:"load_failed"`
	Loaded     []string `yaml:"loaded"`
	NotLoaded  []string `yaml:"not_loaded,omitempty"`
	External   []struct {
		Unit   int    `yaml:"unit"`
		File   string `yaml:"file"`
		Binary bool   `yaml:"binary"`
		Output bool   `yaml:"output,omitempty"`
	} `yaml:"external,omitempty"`
}

func writeReport(path string, m *model.Model) error {
	doc := loadReportDoc{
		Model:      m.Name,
		Version:    m.Version(),
		LoadFailed: m.LoadFailed,
		Loaded:     m.Report.Loaded,
		NotLoaded:  m.Report.NotLoaded,
	}
	for _, b := range m.External {
		doc.External = append(doc.External, struct {
			Unit   int    `yaml:"unit"`
			File   string `yaml:"file"`
			Binary bool   `yaml:"binary"`
			Output bool   `yaml:"output,omitempty"`
		}{b.Unit, b.FileName, b.Binary, b.Output})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling load report: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing load report %s: %w", path, err)
	}
	return nil
}
