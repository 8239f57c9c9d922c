// ABOUTME: Ingest run that fetches each configured feed and persists it as a JSON collection
// ABOUTME: One fetch and one overwrite per source; the first failure ends the run

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/harper/newsroom/internal/fetch"
	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/parse"
	"github.com/harper/newsroom/internal/storage"
)

// SourceResult summarizes one source of an ingest run.
type SourceResult struct {
	Source    models.Source
	FeedTitle string
	Count     int
	Path      string
	Duration  time.Duration
}

// Summary describes a completed ingest run.
type Summary struct {
	RunID   string
	Sources []SourceResult
}

// FetchFeed downloads and parses a feed, returning its entries in feed order.
// Network and parse errors propagate unchanged; there is no retry.
func FetchFeed(ctx context.Context, url string) (*parse.ParsedFeed, error) {
	result, err := fetch.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	parsed, err := parse.Parse(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return parsed, nil
}

// Run fetches every source and overwrites its collection in store.
// Sources share no state; they are processed in the order given.
func Run(ctx context.Context, store storage.Store, sources []models.Source) (*Summary, error) {
	summary := &Summary{RunID: uuid.New().String()}
	logger := log.WithField("run", summary.RunID)

	for _, source := range sources {
		started := time.Now()
		sourceLog := logger.WithFields(log.Fields{
			"source": source.Name,
			"url":    source.URL,
		})
		sourceLog.Info("Fetching feed")

		parsed, err := FetchFeed(ctx, source.URL)
		if err != nil {
			sourceLog.WithError(err).Error("Fetch failed")
			return summary, fmt.Errorf("fetch %s feed: %w", source.Name, err)
		}

		if err := store.Save(source, parsed.Records); err != nil {
			sourceLog.WithError(err).Error("Persist failed")
			return summary, fmt.Errorf("persist %s feed: %w", source.Name, err)
		}

		res := SourceResult{
			Source:    source,
			FeedTitle: parsed.Title,
			Count:     len(parsed.Records),
			Path:      store.Path(source),
			Duration:  time.Since(started),
		}
		summary.Sources = append(summary.Sources, res)

		sourceLog.WithFields(log.Fields{
			"records":  res.Count,
			"path":     res.Path,
			"duration": res.Duration,
		}).Info("Feed persisted")
	}

	return summary, nil
}
