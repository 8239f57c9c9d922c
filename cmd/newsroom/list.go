// ABOUTME: List command for viewing a persisted collection in the terminal
// ABOUTME: Filters by today or previous and optionally renders summaries as markdown

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/newsroom/internal/config"
	"github.com/harper/newsroom/internal/content"
	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/present"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List records of a collection",
	Long:    "List the records of the news or press collection, optionally only those published today or before today",
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceName, _ := cmd.Flags().GetString("source")
		today, _ := cmd.Flags().GetBool("today")
		previous, _ := cmd.Flags().GetBool("previous")
		full, _ := cmd.Flags().GetBool("full")
		limit, _ := cmd.Flags().GetInt("limit")

		source, err := cfg.GetSource(sourceName)
		if err != nil {
			return err
		}

		records, err := store.Load(source)
		if err != nil {
			return fmt.Errorf("failed to load %s collection: %w", source.Name, err)
		}

		period := present.PeriodAll
		if today {
			period = present.PeriodToday
		} else if previous {
			period = present.PeriodPrevious
		}

		selected, skipped := present.Select(records, time.Now(), period)
		if limit > 0 && limit < len(selected) {
			selected = selected[:limit]
		}

		w := cmd.OutOrStdout()
		if len(selected) == 0 {
			fmt.Fprintln(w, "No records found")
		}
		for _, record := range selected {
			printRecord(w, record, full)
		}
		if skipped != nil {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Fprintf(w, "%s\n", yellow(skipped.Error()))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("source", "s", models.SourceNews, "collection to list (news or press)")
	listCmd.Flags().Bool("today", false, "show only records published today")
	listCmd.Flags().Bool("previous", false, "show only records published before today")
	listCmd.Flags().BoolP("full", "f", false, "show author, link and rendered summary")
	listCmd.Flags().IntP("limit", "n", 0, "max records to show (0 for all)")

	listCmd.MarkFlagsMutuallyExclusive("today", "previous")
}

func printRecord(w io.Writer, record models.Record, full bool) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	card := present.Render(record)
	title := card.Title
	if title == "" {
		title = "Untitled"
	}

	if !full {
		fmt.Fprintf(w, "%s %s\n", title, faint(card.Published))
		return
	}

	fmt.Fprintln(w, strings.Repeat("─", config.SeparatorWidth))
	fmt.Fprintf(w, "%s\n\n", bold(title))
	if card.Author != "" {
		fmt.Fprintf(w, "%s %s\n", faint("Author:"), card.Author)
	}
	if card.Published != "" {
		fmt.Fprintf(w, "%s %s\n", faint("Published:"), card.Published)
	}
	if card.Link != "" {
		fmt.Fprintf(w, "%s %s\n", faint("Link:"), cyan(card.Link))
	}

	if card.Summary == "" {
		fmt.Fprintln(w, "\n(No summary available)")
		return
	}

	markdown := content.ToMarkdown(card.Summary)
	rendered, err := glamour.Render(markdown, "dark")
	if err != nil {
		fmt.Fprintf(w, "%s\n", faint("(markdown rendering unavailable, showing plain text)"))
		fmt.Fprintf(w, "\n%s\n", markdown)
		return
	}
	fmt.Fprint(w, rendered)
}
