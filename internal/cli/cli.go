// Package cli implements the relsweep command-line interface.
//
// The CLI is built using cobra with logging via the charmbracelet/log
// library. The single sweep command validates its inputs (repository,
// target version, token, retention count) before the engine issues any
// API call; validation failures exit with status 1 and zero API calls.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/relsweep/relsweep/pkg/buildinfo"
)

// appName is the application name used for config paths and display.
const appName = "relsweep"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
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
		Short:        "Relsweep prunes GitHub release history against a retention policy",
		Long:         `Relsweep deletes prerelease versions and stable releases beyond a retention count, together with their git tags, relative to a target version. Supports dry-run and resilient API access with rate-limit backoff.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.AddCommand(c.sweepCommand())

	return root
}
