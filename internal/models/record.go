// ABOUTME: Record model representing one normalized feed entry as persisted on disk
// ABOUTME: Keeps every parser-provided field and exposes typed accessors for the known ones

package models

import (
	"errors"
	"fmt"
	"time"
)

// PublishedLayout is the fixed format of the published field.
// The trailing +0000 is matched as literal text, not as a zone offset.
const PublishedLayout = "Mon, 02 Jan 2006 15:04:05 +0000"

// Well-known record keys
const (
	KeyTitle     = "title"
	KeyLink      = "link"
	KeyPublished = "published"
	KeySummary   = "summary"
	KeyAuthor    = "author"
	KeyImageURL  = "image_url"
)

var (
	ErrNoPublished = errors.New("record has no published field")
	ErrNoSummary   = errors.New("record has no summary field")
)

// Record is one feed entry. Unknown keys are carried through untouched so
// that a persisted collection holds everything the feed parser extracted.
type Record map[string]any

// Collection is an ordered list of records in feed-provider order.
type Collection []Record

// stringField returns the string value of key and whether it was present as a string.
func (r Record) stringField(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Title returns the record title, or an empty string.
func (r Record) Title() string {
	s, _ := r.stringField(KeyTitle)
	return s
}

// Link returns the record link, or an empty string.
func (r Record) Link() string {
	s, _ := r.stringField(KeyLink)
	return s
}

// Author returns the author name if the feed provided one.
func (r Record) Author() string {
	s, _ := r.stringField(KeyAuthor)
	return s
}

// ImageURL returns the provider image URL if present.
func (r Record) ImageURL() string {
	s, _ := r.stringField(KeyImageURL)
	return s
}

// Published returns the raw published string.
func (r Record) Published() (string, bool) {
	return r.stringField(KeyPublished)
}

// Summary returns the summary text. A present-but-empty summary reports ok=true.
func (r Record) Summary() (string, bool) {
	return r.stringField(KeySummary)
}

// PublishedAt parses the published field with ParsePublished.
func (r Record) PublishedAt() (time.Time, error) {
	s, ok := r.Published()
	if !ok {
		return time.Time{}, ErrNoPublished
	}
	return ParsePublished(s)
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ParsePublished parses s using PublishedLayout. No zone conversion is applied.
func ParsePublished(s string) (time.Time, error) {
	t, err := time.Parse(PublishedLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid published date %q: %w", s, err)
	}
	return t, nil
}

// FormatPublished renders t in PublishedLayout after converting it to UTC.
func FormatPublished(t time.Time) string {
	return t.UTC().Format(PublishedLayout)
}
