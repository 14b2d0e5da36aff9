// Package cmd implements the pulseboard command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var (
	cfgFile string
	debug   bool
)

// NewRootCommand returns the pulseboard command tree. With no subcommand it serves.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pulseboard",
		Short:         "Scrape listing titles and show their keyword sentiment",
		Long:          `pulseboard fetches a listing page, labels each title negative or neutral by keyword, and serves the result as a web page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $CONFIG_PATH or ./config.yml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	root.AddCommand(newServeCommand())
	root.AddCommand(newScanCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
