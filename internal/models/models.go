// Package models contains the data models and DTOs for the YouTube channel
// stats service.
package models

import "time"

// ChannelStats is the unified, flat channel result. Numeric fields are
// already coerced from the API's decimal strings; a value of 0 may mean
// "actually zero" or "failed to parse" (the coercion is deliberately lossy).
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ChannelStats struct {
	ChannelID             string            `json:"channel_id"`
	ChannelTitle          string            `json:"channel_title"`
	ChannelDescription    string            `json:"channel_description"`
	PublishedAt           string            `json:"published_at"`
	CustomURL             string            `json:"custom_url,omitempty"`
	Country               string            `json:"country,omitempty"`
	SubscriberCount       *uint64           `json:"subscriber_count"`
	SubscriberCountHidden bool              `json:"subscriber_count_hidden,omitempty"`
	TotalViewCount        uint64            `json:"total_view_count"`
	VideoCount            uint64            `json:"video_count"`
	Thumbnails            map[string]string `json:"thumbnails"`
	ChannelKeywords       string            `json:"channel_keywords,omitempty"`
	RecentVideos          []RecentVideo     `json:"recent_videos"`

	// Page totals: sums over exactly the fetched recent videos, not
	// channel-lifetime totals.
	TotalRecentViews    uint64 `json:"total_recent_views"`
	TotalRecentLikes    uint64 `json:"total_recent_likes"`
	TotalRecentComments uint64 `json:"total_recent_comments"`

	ChannelURL string `json:"channel_url"`
}

// RecentVideo is one normalized entry of the recent-uploads page. The count
// pointers are nil when the corresponding raw field (or the whole
// statistics block) was absent, and 0 when present but unparsable.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type RecentVideo struct {
	VideoID      string  `json:"video_id"`
	Title        string  `json:"title"`
	PublishedAt  string  `json:"published_at"`
	Description  string  `json:"description,omitempty"`
	ViewCount    *uint64 `json:"view_count,omitempty"`
	LikeCount    *uint64 `json:"like_count,omitempty"`
	CommentCount *uint64 `json:"comment_count,omitempty"`
	VideoURL     string  `json:"video_url"`
}

// ChannelSummary is one channel-search hit.
type ChannelSummary struct {
	ChannelID   string `json:"channel_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ChannelURL  string `json:"channel_url"`
	CustomURL   string `json:"custom_url,omitempty"`
}

// ErrorResponse represents an error response.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}
