// ABOUTME: Export command for writing the configured feeds as OPML to stdout
// ABOUTME: Lets the news and press feeds be imported into any feed reader

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/newsroom/internal/config"
	"github.com/harper/newsroom/internal/opml"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export feeds as OPML to stdout",
	Long:  "Export the configured news and press-release feeds in OPML format to standard output",
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, _ := cmd.Flags().GetString("folder")
		doc := opml.FromSources(config.SiteTitle, folder, cfg.GetSources())
		return doc.Write(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("folder", "IARC", "OPML folder for the feeds (empty for none)")
}
