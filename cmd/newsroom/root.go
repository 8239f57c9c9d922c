// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads configuration and opens the collection store before every subcommand

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/newsroom/internal/config"
	"github.com/harper/newsroom/internal/storage"
)

var (
	dataDir string
	cfg     *config.Config
	store   *storage.FileStore
)

var rootCmd = &cobra.Command{
	Use:   "newsroom",
	Short: "IARC news and press-release reader",
	Long: `
███╗   ██╗███████╗██╗    ██╗███████╗██████╗  ██████╗  ██████╗ ███╗   ███╗
████╗  ██║██╔════╝██║    ██║██╔════╝██╔══██╗██╔═══██╗██╔═══██╗████╗ ████║
██╔██╗ ██║█████╗  ██║ █╗ ██║███████╗██████╔╝██║   ██║██║   ██║██╔████╔██║
██║╚██╗██║██╔══╝  ██║███╗██║╚════██║██╔══██╗██║   ██║██║   ██║██║╚██╔╝██║
██║ ╚████║███████╗╚███╔███╔╝███████║██║  ██║╚██████╔╝╚██████╔╝██║ ╚═╝ ██║
╚═╝  ╚═══╝╚══════╝ ╚══╝╚══╝ ╚══════╝╚═╝  ╚═╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝

Fetches the International Agency for Research on Cancer news and
press-release feeds, stores them as JSON, and serves them as a small
website with a word cloud of the latest articles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		store = cfg.OpenStorage()
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding rss_data_news.json and rss_data_press.json (default: current directory)")
}
