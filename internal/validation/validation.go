// Package validation checks request inputs before any upstream call is made.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxIdentifierLength = 100
	maxQueryLength      = 200
)

var (
	channelIDRegex = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
	videoIDRegex   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ValidateChannelIdentifier checks a channel reference (ID, @handle, or
// legacy username) for basic sanity. It deliberately does not enforce the
// full canonical-ID shape: strategy selection happens on the prefix alone.
func ValidateChannelIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("channel identifier is required")
	}
	if len(identifier) > maxIdentifierLength {
		return fmt.Errorf("channel identifier exceeds %d characters", maxIdentifierLength)
	}
	if strings.ContainsAny(identifier, " \t\r\n") {
		return fmt.Errorf("channel identifier must not contain whitespace")
	}
	return nil
}

// ValidateSearchQuery checks a channel-search query.
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is required")
	}
	if len(query) > maxQueryLength {
		return fmt.Errorf("search query exceeds %d characters", maxQueryLength)
	}
	return nil
}

// IsCanonicalChannelID reports whether s has the full canonical channel ID
// shape (UC + 22 id characters).
func IsCanonicalChannelID(s string) bool {
	return channelIDRegex.MatchString(s)
}

// IsVideoID reports whether s has the standard 11-character video ID shape.
func IsVideoID(s string) bool {
	return videoIDRegex.MatchString(s)
}
