// ABOUTME: Source model naming one configured feed and the file its collection is written to
// ABOUTME: The two built-in sources are news and press releases

package models

import "fmt"

// Source names
const (
	SourceNews  = "news"
	SourcePress = "press"
)

// Source is a feed URL plus the collection file it is persisted to.
type Source struct {
	Name     string
	Title    string
	URL      string
	Filename string
}

// NewSource creates a Source with the conventional rss_data_<name>.json filename.
func NewSource(name, title, url string) Source {
	return Source{
		Name:     name,
		Title:    title,
		URL:      url,
		Filename: fmt.Sprintf("rss_data_%s.json", name),
	}
}
