// ABOUTME: Immutable site context built once at startup from the persisted collections
// ABOUTME: Holds the partitioned cards for both list pages and the rendered word cloud

package web

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/present"
	"github.com/harper/newsroom/internal/storage"
	"github.com/harper/newsroom/internal/wordcloud"
)

// Section is a headed group of cards.
type Section struct {
	Heading string
	Cards   []present.Card
}

// ListPage is a page that splits a collection into today and previous.
type ListPage struct {
	Title    string
	Today    Section
	Previous Section
}

// Site is everything the pages display. It is never modified after NewSite.
type Site struct {
	articles  ListPage
	press     ListPage
	wordCloud string
	builtAt   time.Time
	warnings  []error
}

// NewSite partitions both collections against ref and renders the word cloud
// from the news summaries. Records that cannot be dated or summarized are
// skipped; the reasons are available from Warnings.
func NewSite(news, press models.Collection, ref time.Time, gen present.Generator) (*Site, error) {
	s := &Site{builtAt: ref}

	var err error
	s.articles, err = buildListPage(news, ref, "Latest Articles", "Articles of Today", "Previous Articles")
	s.addWarning("news", err)
	s.press, err = buildListPage(press, ref, "Latest Press Releases", "Press Releases of Today", "Previous Press Releases")
	s.addWarning("press", err)

	img, err := present.BuildWordCloud(news, gen)
	if img == nil {
		return nil, err
	}
	s.addWarning("word cloud", err)

	s.wordCloud, err = wordcloud.DataURI(img)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// LoadSite loads the news and press collections from store and builds the Site.
// A missing or malformed collection file is fatal.
func LoadSite(store storage.Store, news, press models.Source, ref time.Time, gen present.Generator) (*Site, error) {
	newsRecords, err := store.Load(news)
	if err != nil {
		return nil, fmt.Errorf("load %s collection: %w", news.Name, err)
	}
	pressRecords, err := store.Load(press)
	if err != nil {
		return nil, fmt.Errorf("load %s collection: %w", press.Name, err)
	}

	log.WithFields(log.Fields{
		"news":  len(newsRecords),
		"press": len(pressRecords),
	}).Info("Collections loaded")

	return NewSite(newsRecords, pressRecords, ref, gen)
}

func buildListPage(records models.Collection, ref time.Time, title, todayHeading, previousHeading string) (ListPage, error) {
	today, previous, err := present.PartitionByDate(records, ref)
	return ListPage{
		Title:    title,
		Today:    Section{Heading: todayHeading, Cards: present.RenderAll(today)},
		Previous: Section{Heading: previousHeading, Cards: present.RenderAll(previous)},
	}, err
}

func (s *Site) addWarning(scope string, err error) {
	if err == nil {
		return
	}
	// errors.Join results unwrap to their parts
	var parts []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts = joined.Unwrap()
	} else {
		parts = []error{err}
	}
	for _, p := range parts {
		w := fmt.Errorf("%s: %w", scope, p)
		s.warnings = append(s.warnings, w)
		log.WithError(p).WithField("scope", scope).Warn("Skipped record")
	}
}

// Articles returns the news page data.
func (s *Site) Articles() ListPage {
	return s.articles
}

// Press returns the press-release page data.
func (s *Site) Press() ListPage {
	return s.press
}

// WordCloudURI returns the word cloud as a PNG data URI.
func (s *Site) WordCloudURI() string {
	return s.wordCloud
}

// BuiltAt returns the reference time the site was partitioned against.
func (s *Site) BuiltAt() time.Time {
	return s.builtAt
}

// Warnings returns one error per record that was skipped while building the site.
func (s *Site) Warnings() []error {
	return append([]error(nil), s.warnings...)
}

// HasWarning reports whether any skipped record matches target.
func (s *Site) HasWarning(target error) bool {
	for _, w := range s.warnings {
		if errors.Is(w, target) {
			return true
		}
	}
	return false
}
