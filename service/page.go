package service

import "Chirp/config"

const (
	defaultSuggestedLimit = 5
	defaultSearchLimit    = 10
	maxSearchLimit        = 25
)

// Page is a normalised limit/offset pair.
type Page struct {
	Limit  int
	Offset int
}

// NewPage applies the configured default and cap. A non-positive limit takes
// the default.
func NewPage(feed *config.Feed, limit, offset int) Page {
	if limit <= 0 {
		limit = feed.DefaultLimit
	}
	if limit > feed.MaxLimit {
		limit = feed.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}

// SearchLimit clamps limit to [1, 25]; zero means 10.
func SearchLimit(limit int) int {
	if limit == 0 {
		return defaultSearchLimit
	}
	return min(max(limit, 1), maxSearchLimit)
}
