package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by the version command.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func versionTemplate() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date)
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%sgo: %s\n", versionTemplate(), runtime.Version())
			return err
		},
	}
}
