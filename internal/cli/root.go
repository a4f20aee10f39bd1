package cli

import (
	"github.com/gwflow-labs/gwflow/internal/branding"
	"github.com/gwflow-labs/gwflow/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` assembles an in-memory groundwater model from a MODFLOW name file:
it parses the manifest, dispatches each package to its loader, and reports
which files loaded, which failed, and which passed through as external data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
