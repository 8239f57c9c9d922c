// ABOUTME: Card projection of a record for display
// ABOUTME: Pure and total; content is passed through without truncation or sanitizing

package present

import "github.com/harper/newsroom/internal/models"

// Card is the displayable form of a record.
type Card struct {
	Title     string
	Summary   string
	Published string
	Link      string
	Author    string
	ImageURL  string
}

// Render projects a record onto a Card. Missing fields become empty strings.
func Render(record models.Record) Card {
	summary, _ := record.Summary()
	published, _ := record.Published()
	return Card{
		Title:     record.Title(),
		Summary:   summary,
		Published: published,
		Link:      record.Link(),
		Author:    record.Author(),
		ImageURL:  record.ImageURL(),
	}
}

// RenderAll renders every record in order.
func RenderAll(records models.Collection) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, Render(r))
	}
	return cards
}
