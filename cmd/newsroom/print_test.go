// ABOUTME: Tests for CLI output helpers
// ABOUTME: Verifies record and ingest-summary formatting

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/harper/newsroom/internal/ingest"
	"github.com/harper/newsroom/internal/models"
)

func TestPrintRecord(t *testing.T) {
	record := models.Record{
		models.KeyTitle:     "Monograph 135",
		models.KeyLink:      "https://example.com/m135",
		models.KeyPublished: "Thu, 17 Oct 2024 08:30:00 +0000",
		models.KeySummary:   "<p>An <b>evaluation</b> of PFOA</p>",
		models.KeyAuthor:    "IARC",
	}

	tests := []struct {
		name     string
		record   models.Record
		full     bool
		contains []string
		excludes []string
	}{
		{
			name:     "short",
			record:   record,
			contains: []string{"Monograph 135", "Thu, 17 Oct 2024 08:30:00 +0000"},
			excludes: []string{"Link:", "evaluation"},
		},
		{
			name:     "full",
			record:   record,
			full:     true,
			contains: []string{"Monograph 135", "Author:", "IARC", "Link:", "https://example.com/m135", "evaluation"},
			excludes: []string{"<b>"},
		},
		{
			name:     "untitled without summary",
			record:   models.Record{},
			full:     true,
			contains: []string{"Untitled", "(No summary available)"},
			excludes: []string{"Link:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printRecord(&buf, tt.record, tt.full)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("output unexpectedly contains %q\n%s", bad, out)
				}
			}
		})
	}
}

func TestPrintIngestSummary(t *testing.T) {
	summary := &ingest.Summary{
		RunID: "run-123",
		Sources: []ingest.SourceResult{
			{
				Source:    models.NewSource(models.SourceNews, "Latest Articles", "https://example.com/news"),
				FeedTitle: "IARC News",
				Count:     12,
				Path:      "rss_data_news.json",
				Duration:  1500 * time.Millisecond,
			},
			{
				Source:   models.NewSource(models.SourcePress, "Latest Press Releases", "https://example.com/press"),
				Count:    3,
				Path:     "rss_data_press.json",
				Duration: time.Second,
			},
		},
	}

	var buf bytes.Buffer
	printIngestSummary(&buf, summary)
	out := buf.String()

	for _, want := range []string{"IARC News: 12 records", "rss_data_news.json", "Latest Press Releases: 3 records", "run run-123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
