// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beatgig/youtube-stats/internal/models"
	"github.com/beatgig/youtube-stats/internal/service"
	"github.com/beatgig/youtube-stats/internal/service/youtube"
	"github.com/beatgig/youtube-stats/internal/validation"
	"github.com/beatgig/youtube-stats/pkg/logger"
)

// ChannelHandler handles channel stats and search HTTP requests.
type ChannelHandler struct {
	statsService *service.ChannelStatsService
}

// NewChannelHandler creates a new ChannelHandler instance.
func NewChannelHandler(statsService *service.ChannelStatsService) *ChannelHandler {
	return &ChannelHandler{
		statsService: statsService,
	}
}

// GetChannelStats serves GET /api/v1/channels/:identifier/stats.
// The identifier may be a canonical channel ID, an @handle, or a legacy
// username. The optional "videos" query parameter sets the recent-uploads
// page size (default 10, max 50).
func (h *ChannelHandler) GetChannelStats(c *gin.Context) {
	identifier := c.Param("identifier")

	if err := validation.ValidateChannelIdentifier(identifier); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	videoCount, err := parseCountParam(c, "videos", youtube.DefaultVideoCount)
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	logger.Log.Info("Channel stats requested",
		zap.String("identifier", identifier),
		zap.Int64("videoCount", videoCount),
	)

	stats, err := h.statsService.GetChannelStats(c.Request.Context(), identifier, videoCount)
	if err != nil {
		h.handleUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SearchChannels serves GET /api/v1/channels/search.
// Requires a "q" query parameter; "max_results" is optional (default 5,
// clamped to 50 before being sent upstream).
func (h *ChannelHandler) SearchChannels(c *gin.Context) {
	query := c.Query("q")

	if err := validation.ValidateSearchQuery(query); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	maxResults, err := parseCountParam(c, "max_results", youtube.DefaultSearchResults)
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	logger.Log.Info("Channel search requested",
		zap.String("query", query),
		zap.Int64("maxResults", maxResults),
	)

	summaries, err := h.statsService.SearchChannels(c.Request.Context(), query, maxResults)
	if err != nil {
		h.handleUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": summaries,
		"count":   len(summaries),
	})
}

// parseCountParam reads an optional positive integer query parameter.
func parseCountParam(c *gin.Context, name string, fallback int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return value, nil
}

func (h *ChannelHandler) badRequest(c *gin.Context, message string) {
	logger.Log.Warn("Invalid request",
		zap.String("path", c.Request.URL.Path),
		zap.String("reason", message),
	)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}

// handleUpstreamError maps the client's error taxonomy onto HTTP statuses:
// not-found stays 404, upstream 4xx statuses are relayed, everything else
// (transport, decode, upstream 5xx) becomes 502.
func (h *ChannelHandler) handleUpstreamError(c *gin.Context, err error) {
	var statusErr *youtube.StatusError

	switch {
	case errors.Is(err, youtube.ErrChannelNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status:    http.StatusNotFound,
			Error:     "Not Found",
			Message:   "Channel not found",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	case errors.As(err, &statusErr):
		logger.Log.Error("Upstream API error",
			zap.Error(err),
			zap.Int("upstreamStatus", statusErr.StatusCode),
			zap.String("path", c.Request.URL.Path),
		)
		status := http.StatusBadGateway
		if statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			status = statusErr.StatusCode
		}
		c.JSON(status, models.ErrorResponse{
			Status:    status,
			Error:     http.StatusText(status),
			Message:   statusErr.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	default:
		logger.Log.Error("Upstream request failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Status:    http.StatusBadGateway,
			Error:     "Bad Gateway",
			Message:   err.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	}
}
