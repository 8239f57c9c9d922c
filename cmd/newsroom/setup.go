// ABOUTME: Cobra command for interactive newsroom configuration.
// ABOUTME: Launches a bubbletea TUI wizard, resolves the entered feed URLs, and saves the config.
package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/newsroom/internal/config"
	"github.com/harper/newsroom/internal/discover"
	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure data directory and feed URLs",
	Long: `Interactive wizard to configure the data directory and the news and
press-release feed URLs.

Each URL is checked before saving: a site or page URL is resolved to the
feed it advertises. Use --no-discover to save the URLs as entered.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().Bool("no-discover", false, "save feed URLs without checking them")
}

func runSetup(cmd *cobra.Command, args []string) error {
	noDiscover, _ := cmd.Flags().GetBool("no-discover")

	existing := tui.SetupResult{DataDir: cfg.DataDir}
	for _, s := range cfg.GetSources() {
		switch s.Name {
		case models.SourceNews:
			existing.NewsURL = s.URL
		case models.SourcePress:
			existing.PressURL = s.URL
		}
	}

	p := tea.NewProgram(tui.NewSetupModel(existing))
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Fprintln(cmd.OutOrStdout(), "Setup canceled.")
		return nil
	}

	values := final.Result()
	if !noDiscover {
		values, err = resolveFeeds(cmd.Context(), cmd.OutOrStdout(), values)
		if err != nil {
			return err
		}
	}

	cfg.DataDir = values.DataDir
	cfg.Sources = map[string]string{
		models.SourceNews:  values.NewsURL,
		models.SourcePress: values.PressURL,
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", config.GetConfigPath())
	return nil
}

// resolveFeeds replaces each entered URL with the feed discovered from it
func resolveFeeds(ctx context.Context, w io.Writer, values tui.SetupResult) (tui.SetupResult, error) {
	faint := color.New(color.Faint).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	for _, target := range []*string{&values.NewsURL, &values.PressURL} {
		fmt.Fprintf(w, "%s %s\n", faint("Checking"), *target)
		feed, err := discover.Discover(ctx, *target)
		if err != nil {
			return values, fmt.Errorf("no feed at %s: %w", *target, err)
		}
		if feed.URL != *target {
			fmt.Fprintf(w, "  %s %s\n", faint("Using feed"), feed.URL)
		}
		fmt.Fprintf(w, "  %s %s (%d items)\n", green("✓"), feed.Title, feed.Items)
		*target = feed.URL
	}
	return values, nil
}
