// Package service provides business logic for channel stats lookups.
package service

import (
	"fmt"
	"strconv"

	"github.com/beatgig/youtube-stats/internal/models"
	"github.com/beatgig/youtube-stats/internal/service/youtube"
)

const (
	watchURLFormat   = "https://www.youtube.com/watch?v=%s"
	channelURLFormat = "https://www.youtube.com/channel/%s"
)

// NormalizeChannel maps a raw channel record and its enriched recent videos
// into the flat ChannelStats DTO. Numeric strings that fail to parse as
// non-negative integers become 0, never errors; a hidden subscriber count
// surfaces as a nil count plus an explicit flag, never as zero.
func NormalizeChannel(channel *youtube.Channel, videos []youtube.Video) *models.ChannelStats {
	stats := &models.ChannelStats{
		ChannelID:          channel.ID,
		ChannelTitle:       channel.Snippet.Title,
		ChannelDescription: channel.Snippet.Description,
		PublishedAt:        channel.Snippet.PublishedAt,
		CustomURL:          channel.Snippet.CustomURL,
		Country:            channel.Snippet.Country,
		TotalViewCount:     parseCount(channel.Statistics.ViewCount),
		VideoCount:         parseCount(channel.Statistics.VideoCount),
		Thumbnails:         normalizeThumbnails(channel.Snippet.Thumbnails),
		ChannelURL:         fmt.Sprintf(channelURLFormat, channel.ID),
	}

	if channel.Statistics.HiddenSubscriberCount {
		stats.SubscriberCountHidden = true
	} else {
		subscribers := parseCount(channel.Statistics.SubscriberCount)
		stats.SubscriberCount = &subscribers
	}

	if channel.BrandingSettings != nil && channel.BrandingSettings.Channel != nil {
		stats.ChannelKeywords = channel.BrandingSettings.Channel.Keywords
	}

	stats.RecentVideos = make([]models.RecentVideo, 0, len(videos))
	for _, video := range videos {
		entry := models.RecentVideo{
			VideoID:     video.ID,
			Title:       video.Snippet.Title,
			PublishedAt: video.Snippet.PublishedAt,
			Description: video.Snippet.Description,
			VideoURL:    fmt.Sprintf(watchURLFormat, video.ID),
		}

		if video.Statistics != nil {
			entry.ViewCount = parseCountField(video.Statistics.ViewCount)
			entry.LikeCount = parseCountField(video.Statistics.LikeCount)
			entry.CommentCount = parseCountField(video.Statistics.CommentCount)
		}

		stats.RecentVideos = append(stats.RecentVideos, entry)

		if entry.ViewCount != nil {
			stats.TotalRecentViews += *entry.ViewCount
		}
		if entry.LikeCount != nil {
			stats.TotalRecentLikes += *entry.LikeCount
		}
		if entry.CommentCount != nil {
			stats.TotalRecentComments += *entry.CommentCount
		}
	}

	return stats
}

// NormalizeSearchResults maps channel-search hits into summaries.
func NormalizeSearchResults(results []youtube.SearchResult) []models.ChannelSummary {
	summaries := make([]models.ChannelSummary, 0, len(results))
	for _, result := range results {
		summaries = append(summaries, models.ChannelSummary{
			ChannelID:   result.ID.ChannelID,
			Title:       result.Snippet.Title,
			Description: result.Snippet.Description,
			ChannelURL:  fmt.Sprintf(channelURLFormat, result.ID.ChannelID),
			CustomURL:   result.Snippet.CustomURL,
		})
	}
	return summaries
}

func normalizeThumbnails(thumbnails youtube.Thumbnails) map[string]string {
	urls := make(map[string]string)
	if thumbnails.Default != nil {
		urls["default"] = thumbnails.Default.URL
	}
	if thumbnails.Medium != nil {
		urls["medium"] = thumbnails.Medium.URL
	}
	if thumbnails.High != nil {
		urls["high"] = thumbnails.High.URL
	}
	return urls
}

// parseCount coerces a decimal-string counter, absorbing absence and parse
// defects as 0.
func parseCount(raw string) uint64 {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// parseCountField is parseCount for optional per-video fields: nil when the
// raw field was absent, 0 when present but unparsable.
func parseCountField(raw string) *uint64 {
	if raw == "" {
		return nil
	}
	value := parseCount(raw)
	return &value
}
