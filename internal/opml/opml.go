// ABOUTME: OPML export of the configured feed sources
// ABOUTME: Writes and reads OPML 2.0 so the news and press feeds can be subscribed elsewhere

package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harper/newsroom/internal/models"
)

// Document is an OPML document with a title and one outline per feed,
// optionally grouped under a folder outline.
type Document struct {
	Title    string
	Outlines []Outline
}

// Outline is either a folder (with Children) or a feed (with XMLURL).
type Outline struct {
	Text     string
	Title    string
	Type     string
	XMLURL   string
	Children []Outline
}

// Feed is a single feed with the folder it sits in.
type Feed struct {
	URL    string
	Title  string
	Folder string
}

type opmlXML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    headXML  `xml:"head"`
	Body    bodyXML  `xml:"body"`
}

type headXML struct {
	Title string `xml:"title"`
}

type bodyXML struct {
	Outlines []outlineXML `xml:"outline"`
}

type outlineXML struct {
	Text     string       `xml:"text,attr"`
	Title    string       `xml:"title,attr,omitempty"`
	Type     string       `xml:"type,attr,omitempty"`
	XMLURL   string       `xml:"xmlUrl,attr,omitempty"`
	Children []outlineXML `xml:"outline,omitempty"`
}

// FromSources builds a document with every source inside one folder.
// An empty folder puts the sources at the root.
func FromSources(title, folder string, sources []models.Source) *Document {
	feeds := make([]Outline, 0, len(sources))
	for _, s := range sources {
		feeds = append(feeds, Outline{
			Text:   s.Title,
			Title:  s.Title,
			Type:   "rss",
			XMLURL: s.URL,
		})
	}

	doc := &Document{Title: title}
	if folder == "" {
		doc.Outlines = feeds
	} else {
		doc.Outlines = []Outline{{Text: folder, Children: feeds}}
	}
	return doc
}

// Parse reads OPML data from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	var opml opmlXML
	if err := xml.NewDecoder(r).Decode(&opml); err != nil {
		return nil, fmt.Errorf("failed to decode OPML: %w", err)
	}

	doc := &Document{
		Title:    opml.Head.Title,
		Outlines: make([]Outline, len(opml.Body.Outlines)),
	}
	for i, outline := range opml.Body.Outlines {
		doc.Outlines[i] = convertOutlineFromXML(outline)
	}
	return doc, nil
}

// ParseFile reads OPML data from a file.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// AllFeeds returns a flat list of all feeds in document order.
func (d *Document) AllFeeds() []Feed {
	var feeds []Feed
	for _, outline := range d.Outlines {
		feeds = append(feeds, collectFeeds(outline, "")...)
	}
	return feeds
}

// Write writes the document as OPML 2.0 XML.
func (d *Document) Write(w io.Writer) error {
	opml := opmlXML{
		Version: "2.0",
		Head:    headXML{Title: d.Title},
		Body: bodyXML{
			Outlines: make([]outlineXML, len(d.Outlines)),
		},
	}
	for i, outline := range d.Outlines {
		opml.Body.Outlines[i] = convertOutlineToXML(outline)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(opml); err != nil {
		return fmt.Errorf("failed to encode OPML: %w", err)
	}
	// Encode leaves the document without a trailing newline
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes the document to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return d.Write(file)
}

func convertOutlineFromXML(x outlineXML) Outline {
	o := Outline{
		Text:   x.Text,
		Title:  x.Title,
		Type:   x.Type,
		XMLURL: x.XMLURL,
	}
	for _, child := range x.Children {
		o.Children = append(o.Children, convertOutlineFromXML(child))
	}
	return o
}

func convertOutlineToXML(o Outline) outlineXML {
	x := outlineXML{
		Text:   o.Text,
		Title:  o.Title,
		Type:   o.Type,
		XMLURL: o.XMLURL,
	}
	for _, child := range o.Children {
		x.Children = append(x.Children, convertOutlineToXML(child))
	}
	return x
}

func collectFeeds(outline Outline, folder string) []Feed {
	if outline.XMLURL != "" {
		title := outline.Title
		if title == "" {
			title = outline.Text
		}
		return []Feed{{URL: outline.XMLURL, Title: title, Folder: folder}}
	}

	var feeds []Feed
	for _, child := range outline.Children {
		feeds = append(feeds, collectFeeds(child, outline.Text)...)
	}
	return feeds
}
