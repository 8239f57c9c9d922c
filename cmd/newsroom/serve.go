// ABOUTME: Serve command that builds the site once from the JSON collections and serves it
// ABOUTME: Startup fails before listening if either collection is missing or malformed

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/web"
	"github.com/harper/newsroom/internal/wordcloud"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the articles, press releases and word cloud",
	Long: `Load rss_data_news.json and rss_data_press.json, partition them against
today's date, render the word cloud, and serve three pages:

  /articles        latest articles (also any unknown path)
  /press-releases  latest press releases
  /word-cloud      word cloud of the article summaries

The site is built once at startup; run 'newsroom ingest' and restart to refresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		debug, _ := cmd.Flags().GetBool("debug")
		if addr == "" {
			addr = cfg.GetAddr()
		}

		if debug {
			gin.SetMode(gin.DebugMode)
			log.SetLevel(log.DebugLevel)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		news, err := cfg.GetSource(models.SourceNews)
		if err != nil {
			return err
		}
		press, err := cfg.GetSource(models.SourcePress)
		if err != nil {
			return err
		}

		gen, err := wordcloud.New()
		if err != nil {
			return fmt.Errorf("failed to create word cloud generator: %w", err)
		}

		site, err := web.LoadSite(store, news, press, time.Now(), gen)
		if err != nil {
			return err
		}
		if n := len(site.Warnings()); n > 0 {
			log.WithField("skipped", n).Warn("Some records could not be displayed")
		}

		server, err := web.NewServer(site)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.WithFields(log.Fields{
			"addr":     addr,
			"data_dir": store.DataDir(),
		}).Info("Starting server")
		return server.ListenAndServe(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default: :8050)")
	serveCmd.Flags().Bool("debug", false, "enable debug logging")
}
