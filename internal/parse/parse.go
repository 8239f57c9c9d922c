// ABOUTME: RSS/Atom feed parsing using gofeed library
// ABOUTME: Converts gofeed items into Records, normalizing the fields the web view depends on

package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/harper/newsroom/internal/models"
)

// ParsedFeed represents a parsed feed document
type ParsedFeed struct {
	Title   string
	Records models.Collection
}

// Parse parses RSS or Atom feed data and returns one Record per item, in document order
func Parse(data []byte) (*ParsedFeed, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseString(string(data))
	if err != nil {
		return nil, err
	}

	parsed := &ParsedFeed{
		Title:   feed.Title,
		Records: make(models.Collection, 0, len(feed.Items)),
	}

	for i, item := range feed.Items {
		record, err := NormalizeItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		parsed.Records = append(parsed.Records, record)
	}

	return parsed, nil
}

// NormalizeItem converts a gofeed item into a Record.
// Every field gofeed extracted is kept under its JSON name; the well-known
// keys are then overwritten with their normalized values.
func NormalizeItem(item *gofeed.Item) (models.Record, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode item: %w", err)
	}

	record := models.Record{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}

	record[models.KeyTitle] = strings.TrimSpace(item.Title)
	record[models.KeyLink] = item.Link

	// Use PublishedParsed or fallback to UpdatedParsed
	switch {
	case item.PublishedParsed != nil:
		record[models.KeyPublished] = models.FormatPublished(*item.PublishedParsed)
	case item.UpdatedParsed != nil:
		record[models.KeyPublished] = models.FormatPublished(*item.UpdatedParsed)
	case item.Published != "":
		record[models.KeyPublished] = item.Published
	case item.Updated != "":
		record[models.KeyPublished] = item.Updated
	}

	// Prefer Description over Content, the same way feed readers build summaries
	switch {
	case item.Description != "":
		record[models.KeySummary] = strings.TrimSpace(item.Description)
	case item.Content != "":
		record[models.KeySummary] = strings.TrimSpace(item.Content)
	}

	delete(record, models.KeyAuthor)
	if name := authorName(item); name != "" {
		record[models.KeyAuthor] = name
	}

	if item.Image != nil && item.Image.URL != "" {
		record[models.KeyImageURL] = item.Image.URL
	}

	return record, nil
}

// authorName returns the first non-empty author name on the item
func authorName(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}
