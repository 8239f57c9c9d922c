// ABOUTME: Ingest command that fetches both feeds and overwrites their JSON collections
// ABOUTME: Stops at the first failing source and exits non-zero

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/newsroom/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:     "ingest",
	Aliases: []string{"fetch"},
	Short:   "Fetch the news and press feeds",
	Long: `Fetch the configured news and press-release feeds once each and
overwrite rss_data_news.json and rss_data_press.json in the data directory.

A network or parse failure aborts the run; collections written before the
failure are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		summary, err := ingest.Run(ctx, store, cfg.GetSources())
		if summary != nil {
			printIngestSummary(cmd.OutOrStdout(), summary)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func printIngestSummary(w io.Writer, summary *ingest.Summary) {
	green := color.New(color.FgGreen).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for _, res := range summary.Sources {
		name := res.FeedTitle
		if name == "" {
			name = res.Source.Title
		}
		fmt.Fprintf(w, "%s %s: %d records → %s %s\n",
			green("✓"), name, res.Count, res.Path, faint(res.Duration.Round(time.Millisecond)))
	}
	fmt.Fprintf(w, "%s\n", faint("run "+summary.RunID))
}
