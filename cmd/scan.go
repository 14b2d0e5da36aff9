package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/pulseboard/internal/bootstrap"
	"github.com/jonesrussell/pulseboard/internal/domain"
	"github.com/jonesrussell/pulseboard/internal/presenter"
)

func newScanCommand() *cobra.Command {
	var asHTML bool

	scan := &cobra.Command{
		Use:   "scan",
		Short: "Collect and classify once, then print a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig(cfgFile, debug)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Logs go to stderr so the table on stdout stays clean.
			log, err := bootstrap.CreateLogger(cfg, Version, "stderr")
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			app, err := bootstrap.NewApp(cmd.Context(), cfg, log, Version)
			if err != nil {
				return err
			}
			defer app.Close()

			b := app.Boards.Build(cmd.Context())
			if asHTML {
				return presenter.Render(cmd.OutOrStdout(), presenter.Page{Board: b, Version: Version})
			}
			RenderBoard(cmd.OutOrStdout(), b)
			return nil
		},
	}

	scan.Flags().BoolVar(&asHTML, "html", false, "print the board page as HTML instead of a table")

	return scan
}

// RenderBoard writes b as a table.
func RenderBoard(w io.Writer, b *domain.Board) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle(b.Source)

	t.AppendHeader(table.Row{"#", "Label", "Title", "Keywords"})
	for i, item := range b.Items {
		label := string(item.Label)
		if item.Label == domain.LabelNegative {
			label = text.FgRed.Sprint(label)
		}
		t.AppendRow(table.Row{i + 1, label, item.Text, strings.Join(item.Keywords, ", ")})
	}
	if b.Empty() {
		t.AppendRow(table.Row{"", "", "no items collected", ""})
	}

	t.AppendFooter(table.Row{
		"",
		"",
		fmt.Sprintf("total %d, negative %d, neutral %d", b.Counts.Total, b.Counts.Negative, b.Counts.Neutral),
		"",
	})
	t.Render()
}

