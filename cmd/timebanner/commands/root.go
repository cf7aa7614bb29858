// Package commands implements the CLI commands for the timebanner service.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/timebanner/timebanner/internal/adapters/config"
)

// CLI represents the command line interface for timebanner.
type CLI struct {
	rootCmd *cobra.Command
}

// New creates a new CLI instance.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "timebanner",
		Short:         "A time banner rendering service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		// The config Graft node reads the path from the environment, so the
		// flag has to land there before any node executes.
		if path != "" {
			return os.Setenv(config.PathEnvVar, path)
		}
		return nil
	}

	c := &CLI{rootCmd: rootCmd}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
