package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/beatgig/youtube-stats/internal/models"
	"github.com/beatgig/youtube-stats/internal/service/youtube"
	"github.com/beatgig/youtube-stats/pkg/logger"
)

// ChannelStatsService resolves channel references and produces normalized
// channel statistics. It holds no state between calls.
type ChannelStatsService struct {
	youtubeClient *youtube.Client
}

// NewChannelStatsService creates a new ChannelStatsService instance.
func NewChannelStatsService(youtubeClient *youtube.Client) *ChannelStatsService {
	return &ChannelStatsService{
		youtubeClient: youtubeClient,
	}
}

// GetChannelStats resolves the identifier, fetches a page of recent uploads
// (best-effort) and returns the normalized result. videoCount <= 0 falls
// back to the default page size. Resolution failures propagate; enrichment
// failures degrade to an empty video list.
func (s *ChannelStatsService) GetChannelStats(ctx context.Context, identifier string, videoCount int64) (*models.ChannelStats, error) {
	channel, err := s.youtubeClient.ResolveChannel(ctx, identifier)
	if err != nil {
		logger.Log.Warn("channel resolution failed",
			zap.String("identifier", identifier),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("channel resolved",
		zap.String("identifier", identifier),
		zap.String("channelId", channel.ID),
		zap.String("title", channel.Snippet.Title),
	)

	videos := s.youtubeClient.RecentVideos(ctx, channel, videoCount)

	stats := NormalizeChannel(channel, videos)

	logger.Log.Debug("channel stats normalized",
		zap.String("channelId", stats.ChannelID),
		zap.Int("recentVideos", len(stats.RecentVideos)),
	)

	return stats, nil
}

// SearchChannels runs a single channel search and maps the hits into
// summaries. maxResults <= 0 falls back to the default, values above the
// upstream cap are clamped.
func (s *ChannelStatsService) SearchChannels(ctx context.Context, query string, maxResults int64) ([]models.ChannelSummary, error) {
	results, err := s.youtubeClient.SearchChannels(ctx, query, maxResults)
	if err != nil {
		logger.Log.Warn("channel search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, err
	}

	return NormalizeSearchResults(results), nil
}
