// Package cli implements the funi command-line interface.
//
// The CLI loads tables from a blob store (local directory, S3 or MinIO),
// deduplicates them within a tolerance and writes the result as JSON. It is
// built using cobra and logs through charmbracelet/log, which also serves as
// the slog handler for the library logger.
//
// # Commands
//
//   - unique: Collapse near-duplicate rows of a stored table
//   - convert: Re-encode a table between JSON and the binary format
//   - version: Print build information
//
// # Configuration
//
// Every command accepts --config pointing at a TOML file. Values from the
// file are used unless the matching flag is set on the command line.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "funi"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
}

// New creates a new CLI instance that logs to w at the given level and
// writes command output to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "funi collapses near-duplicate rows of float tables",
		Long:         `funi finds the unique rows of a 2D float table where rows closer than a tolerance count as duplicates, using either a lexicographic or a projection scan.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(versionTemplate())
	root.SetOut(c.Out)

	root.AddCommand(c.uniqueCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.versionCommand())

	return root
}
