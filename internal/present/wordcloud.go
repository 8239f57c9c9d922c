// ABOUTME: Builds the word-cloud input text from the news collection and hands it to a generator
// ABOUTME: Summaries are joined with single spaces in source order

package present

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/harper/newsroom/internal/models"
)

// Generator turns free text into a word-cloud image.
type Generator interface {
	Generate(text string) (image.Image, error)
}

// WordCloudText joins every record's summary with a single space.
// Records without a summary are skipped and reported in the returned error.
func WordCloudText(records models.Collection) (string, error) {
	summaries := make([]string, 0, len(records))
	var errs []error
	for i, record := range records {
		summary, ok := record.Summary()
		if !ok {
			errs = append(errs, &RecordError{Index: i, Title: record.Title(), Err: models.ErrNoSummary})
			continue
		}
		summaries = append(summaries, summary)
	}
	return strings.Join(summaries, " "), errors.Join(errs...)
}

// BuildWordCloud feeds the joined summaries to gen.
// Skipped records are reported alongside the image; a generator failure returns no image.
func BuildWordCloud(records models.Collection, gen Generator) (image.Image, error) {
	text, skipped := WordCloudText(records)

	img, err := gen.Generate(text)
	if err != nil {
		return nil, fmt.Errorf("generate word cloud: %w", err)
	}
	return img, skipped
}
