package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jonesrussell/pulseboard/internal/bootstrap"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	return bootstrap.Serve(cmd.Context(), cfgFile, debug, Version)
}
