package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatgig/youtube-stats/internal/models"
	"github.com/beatgig/youtube-stats/internal/service"
	"github.com/beatgig/youtube-stats/internal/service/youtube"
	"github.com/beatgig/youtube-stats/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	// Initialize logger to prevent nil pointer errors
	_ = logger.Init("error", "")
}

const handlerChannelBody = `{"items": [{
	"id": "UCuAXFkgsw1L7xaCfnd5JJOw",
	"snippet": {"title": "Test Channel", "description": "d", "publishedAt": "2009-10-25T06:57:33Z",
		"thumbnails": {"default": {"url": "https://yt3.ggpht.com/default.jpg"}}},
	"statistics": {"viewCount": "100", "subscriberCount": "50", "hiddenSubscriberCount": false, "videoCount": "3"},
	"contentDetails": {"relatedPlaylists": {"uploads": "UUuAXFkgsw1L7xaCfnd5JJOw"}}
}]}`

// newRouter wires a ChannelHandler against a canned upstream API.
func newRouter(t *testing.T, upstream http.Handler) *gin.Engine {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client, err := youtube.NewClient("test-api-key", youtube.WithBaseURL(server.URL))
	require.NoError(t, err)

	handler := NewChannelHandler(service.NewChannelStatsService(client))

	router := gin.New()
	router.GET("/api/v1/channels/search", handler.SearchChannels)
	router.GET("/api/v1/channels/:identifier/stats", handler.GetChannelStats)
	return router
}

func cannedUpstream(channelBody, searchBody, videosBody string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/channels", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(channelBody))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(searchBody))
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(videosBody))
	})
	return mux
}

func TestNewChannelHandler(t *testing.T) {
	handler := NewChannelHandler(nil)

	if handler == nil {
		t.Fatal("NewChannelHandler() returned nil")
	}
}

func TestChannelHandler_GetChannelStats(t *testing.T) {
	router := newRouter(t, cannedUpstream(handlerChannelBody, `{"items": []}`, `{"items": []}`))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/channels/UCuAXFkgsw1L7xaCfnd5JJOw/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats models.ChannelStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, "Test Channel", stats.ChannelTitle)
	assert.Equal(t, "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw", stats.ChannelURL)
	assert.NotNil(t, stats.RecentVideos, "recent_videos must serialize as a list, not null")
}

func TestChannelHandler_GetChannelStats_NotFound(t *testing.T) {
	router := newRouter(t, cannedUpstream(`{"items": []}`, `{"items": []}`, `{"items": []}`))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/channels/UCmissing00000000000000/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Not Found", errResp.Error)
	assert.Equal(t, "/api/v1/channels/UCmissing00000000000000/stats", errResp.Path)
}

func TestChannelHandler_GetChannelStats_UpstreamStatusRelayed(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quota exceeded",
			"errors": [{"reason": "quotaExceeded"}]}}`))
	})
	router := newRouter(t, upstream)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/channels/UCuAXFkgsw1L7xaCfnd5JJOw/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "quotaExceeded")
}

func TestChannelHandler_GetChannelStats_BadVideoCount(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "not a number", query: "videos=abc"},
		{name: "zero", query: "videos=0"},
		{name: "negative", query: "videos=-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, cannedUpstream(handlerChannelBody, `{"items": []}`, `{"items": []}`))

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/channels/UCuAXFkgsw1L7xaCfnd5JJOw/stats?"+tt.query, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestChannelHandler_GetChannelStats_CapsVideoCount(t *testing.T) {
	var searchCalls []url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("/channels", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(handlerChannelBody))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		searchCalls = append(searchCalls, r.URL.Query())
		_, _ = w.Write([]byte(`{"items": []}`))
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})
	router := newRouter(t, mux)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/channels/UCuAXFkgsw1L7xaCfnd5JJOw/stats?videos=200", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, searchCalls, 1)
	assert.Equal(t, "50", searchCalls[0].Get("maxResults"),
		"oversized video counts must be capped before reaching the upstream API")
}

func TestChannelHandler_SearchChannels(t *testing.T) {
	searchBody := `{"items": [{"id": {"channelId": "UCfirst0000000000000000"},
		"snippet": {"title": "First", "description": "one"}}]}`
	router := newRouter(t, cannedUpstream(handlerChannelBody, searchBody, `{"items": []}`))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/channels/search?q=first", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []models.ChannelSummary `json:"results"`
		Count   int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "First", resp.Results[0].Title)
}

func TestChannelHandler_SearchChannels_MissingQuery(t *testing.T) {
	router := newRouter(t, cannedUpstream(handlerChannelBody, `{"items": []}`, `{"items": []}`))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/channels/search", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestChannelHandler_SearchChannels_UpstreamErrorKeepsRawBody(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid request"))
	})
	router := newRouter(t, upstream)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/channels/search?q=anything", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "invalid request")
}
