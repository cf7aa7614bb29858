package commands

import (
	"github.com/grindlemire/graft"
	"github.com/spf13/cobra"

	"github.com/timebanner/timebanner/internal/httpapi"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the banner HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, _, err := graft.ExecuteFor[*httpapi.Server](cmd.Context())
			if err != nil {
				return err
			}
			return server.Run(cmd.Context())
		},
	}
}
