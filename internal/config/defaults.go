// ABOUTME: Centralized configuration defaults for newsroom
// ABOUTME: Contains feed URLs, server address, and magic numbers for display and storage

package config

import "time"

// HTTP settings
const (
	DefaultHTTPTimeout = 30 * time.Second
	DefaultAddr        = ":8050"
	ReadHeaderTimeout  = 5 * time.Second
)

// Feed sources
const (
	DefaultNewsURL  = "https://www.iarc.who.int/feed/?post_type=news-events"
	DefaultPressURL = "https://www.iarc.who.int/feed/?post_type=pressrelease"
)

// Display settings
const (
	SiteTitle      = "International Agency for Research On Cancer News & Press"
	SeparatorWidth = 60
)

// Word cloud settings
const (
	WordCloudWidth    = 800
	WordCloudHeight   = 600
	WordCloudMaxWords = 200
)

// Storage settings
const (
	DefaultDataDir   = "."
	DefaultDirPerms  = 0755
	DefaultFilePerms = 0644
)
