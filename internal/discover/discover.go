// ABOUTME: Feed discovery package for resolving a site or page URL to its RSS/Atom feed
// ABOUTME: Supports direct feeds, HTML alternate links, and common WordPress-style path probing

package discover

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/harper/newsroom/internal/fetch"
	"github.com/harper/newsroom/internal/parse"
)

// Common feed paths to probe when other discovery methods fail
var commonFeedPaths = []string{
	"/feed/",
	"/feed",
	"/rss.xml",
	"/rss",
	"/feed.xml",
	"/atom.xml",
	"/index.xml",
}

// Errors returned by discovery functions
var (
	ErrNoFeedFound = errors.New("no RSS/Atom feed found at URL")
	ErrInvalidURL  = errors.New("invalid URL")
)

// DiscoveredFeed represents a feed found during discovery
type DiscoveredFeed struct {
	URL   string // Absolute URL of the feed
	Title string // Feed title (from content or link element)
	Items int    // Number of items in the feed when it was checked
}

// Discover finds an RSS/Atom feed for inputURL. It tries, in order:
//  1. the URL itself as a feed
//  2. <link rel="alternate"> feed links in the page
//  3. common feed paths on the same host
func Discover(ctx context.Context, inputURL string) (*DiscoveredFeed, error) {
	parsedURL, err := url.Parse(inputURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: missing scheme or host", ErrInvalidURL)
	}

	feed, body, err := tryDirectFeed(ctx, inputURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	if feed != nil {
		return feed, nil
	}

	if links, err := extractFeedLinks(body, parsedURL); err == nil {
		for _, candidate := range links {
			verified, _, verifyErr := tryDirectFeed(ctx, candidate.URL)
			if verifyErr == nil && verified != nil {
				if verified.Title == "" {
					verified.Title = candidate.Title
				}
				return verified, nil
			}
		}
	}

	if feed := probeCommonPaths(ctx, parsedURL); feed != nil {
		return feed, nil
	}

	return nil, ErrNoFeedFound
}

// tryDirectFeed fetches feedURL and parses it as a feed.
// A body that is not a feed yields a nil feed and the body, without error.
func tryDirectFeed(ctx context.Context, feedURL string) (*DiscoveredFeed, []byte, error) {
	result, err := fetch.Fetch(ctx, feedURL)
	if err != nil {
		return nil, nil, err
	}

	parsed, parseErr := parse.Parse(result.Body)
	if parseErr != nil {
		return nil, result.Body, nil //nolint:nilerr // not a feed, the caller looks for links instead
	}

	return &DiscoveredFeed{
		URL:   feedURL,
		Title: parsed.Title,
		Items: len(parsed.Records),
	}, result.Body, nil
}

// extractFeedLinks returns the feed URLs of <link rel="alternate"> elements, resolved against baseURL
func extractFeedLinks(htmlBody []byte, baseURL *url.URL) ([]DiscoveredFeed, error) {
	doc, err := html.Parse(bytes.NewReader(htmlBody))
	if err != nil {
		return nil, err
	}

	var feeds []DiscoveredFeed
	var findLinks func(*html.Node)
	findLinks = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, linkType, href, title string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "rel":
					rel = attr.Val
				case "type":
					linkType = attr.Val
				case "href":
					href = attr.Val
				case "title":
					title = attr.Val
				}
			}

			if rel == "alternate" && isFeedContentType(linkType) && href != "" {
				if resolved, err := resolveURL(href, baseURL); err == nil {
					feeds = append(feeds, DiscoveredFeed{URL: resolved, Title: title})
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findLinks(c)
		}
	}

	findLinks(doc)
	return feeds, nil
}

// probeCommonPaths tries common feed paths against the host of baseURL,
// keeping its query so WordPress post_type filters survive
func probeCommonPaths(ctx context.Context, baseURL *url.URL) *DiscoveredFeed {
	for _, path := range commonFeedPaths {
		probe := url.URL{
			Scheme:   baseURL.Scheme,
			Host:     baseURL.Host,
			Path:     path,
			RawQuery: baseURL.RawQuery,
		}
		feed, _, err := tryDirectFeed(ctx, probe.String())
		if err == nil && feed != nil {
			return feed
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

func resolveURL(href string, baseURL *url.URL) (string, error) {
	refURL, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

func isFeedContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "rss") ||
		strings.Contains(contentType, "atom") ||
		strings.Contains(contentType, "xml")
}
