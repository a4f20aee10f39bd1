package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/gwflow-labs/gwflow/internal/namefile"
	"github.com/gwflow-labs/gwflow/internal/packages"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <namefile>",
	Short: "Inspect a name file without loading the model",
	Long: `Parse the name file only: list each entry with its unit, tag, file,
and whether a loader is registered for it, plus any header metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	nf, err := namefile.Parse(args[0], nil)
	if err != nil {
		return err
	}
	defer nf.Close()

	out := cmd.OutOrStdout()
	if nf.Heading != "" {
		fmt.Fprintln(out, nf.Heading)
	}
	if len(nf.Meta) > 0 {
		keys := make([]string, 0, len(nf.Meta))
		for k := range nf.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "   %s: %s\n", k, nf.Meta[k])
		}
	}

	reg := packages.DefaultRegistry()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tTYPE\tFILE\tDISPOSITION")
	for _, e := range nf.Entries {
		disposition := "not loadable"
		switch {
		case reg.Loadable(e.FileType):
			disposition = "package"
		case e.IsData() && e.IsBinary():
			disposition = "external (binary)"
		case e.IsData():
			disposition = "external"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Unit, e.FileType, e.FileName, disposition)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing entry table: %w", err)
	}
	fmt.Fprintf(out, "%d entries\n", len(nf.Entries))
	return nil
}
