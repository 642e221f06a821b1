// Package youtube provides a client for the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/beatgig/youtube-stats/internal/validation"
	"github.com/beatgig/youtube-stats/pkg/logger"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultVideoCount is the recent-upload page size when the caller
	// does not ask for a specific one.
	DefaultVideoCount = 10

	// DefaultSearchResults is the channel-search page size when the caller
	// does not ask for a specific one.
	DefaultSearchResults = 5

	// MaxSearchResults is the upstream cap on maxResults; larger requests
	// are clamped before being sent.
	MaxSearchResults = 50

	channelParts          = "snippet,statistics,contentDetails,brandingSettings"
	defaultRequestTimeout = 15 * time.Second
)

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom API base URL (useful for testing).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout bounds each upstream request. Only applies to the default
// HTTP client; an injected client keeps its own settings.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if hc, ok := c.httpClient.(*http.Client); ok && timeout > 0 {
			hc.Timeout = timeout
		}
	}
}

// Client is a YouTube Data API v3 client authenticated with an API key
// passed as a query parameter. It holds no mutable state; concurrent use
// needs no coordination.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a new YouTube API client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ResolveChannel resolves a channel identifier into a full channel record.
// The lookup strategy follows the identifier's lexical shape: canonical
// "UC…" IDs hit the channels endpoint directly, "@handles" go through a
// channel search followed by a hydrating channels call (search hits carry
// no statistics or content details), and anything else is tried as a
// legacy username.
func (c *Client) ResolveChannel(ctx context.Context, identifier string) (*Channel, error) {
	id := ClassifyIdentifier(identifier)

	switch id.Kind {
	case IdentifierKindID:
		return c.channelDetails(ctx, url.Values{"id": {id.Value}})
	case IdentifierKindHandle:
		return c.resolveHandle(ctx, id.Value)
	default:
		return c.channelDetails(ctx, url.Values{"forUsername": {id.Value}})
	}
}

// channelDetails fetches a single full channel record from the channels
// endpoint using the given selector (id or forUsername).
func (c *Client) channelDetails(ctx context.Context, params url.Values) (*Channel, error) {
	params.Set("part", channelParts)

	status, body, err := c.get(ctx, "channels", params)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, decodeStatusError(status, body)
	}

	var resp channelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{What: "channel data", Err: err}
	}

	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	channel := resp.Items[0]
	return &channel, nil
}

// resolveHandle resolves an "@handle" (prefix already stripped) via channel
// search, then hydrates the first hit carrying a canonical channel ID with a
// second channels call. Hits without a usable ID cannot be hydrated and are
// skipped.
func (c *Client) resolveHandle(ctx context.Context, handle string) (*Channel, error) {
	params := url.Values{
		"part": {"snippet"},
		"type": {"channel"},
		"q":    {handle},
	}

	status, body, err := c.get(ctx, "search", params)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, decodeStatusError(status, body)
	}

	var resp searchListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{What: "channel data", Err: err}
	}

	for _, hit := range resp.Items {
		if validation.IsCanonicalChannelID(hit.ID.ChannelID) {
			return c.channelDetails(ctx, url.Values{"id": {hit.ID.ChannelID}})
		}
	}

	return nil, ErrChannelNotFound
}

// RecentVideos fetches up to limit recent uploads for the channel, most
// recent first, with full statistics. limit defaults to DefaultVideoCount
// and is clamped to MaxSearchResults before being sent upstream. The lookup
// is best-effort: a channel without an uploads playlist, and every HTTP or
// decode failure along the way, degrade to an empty result rather than an
// error.
func (c *Client) RecentVideos(ctx context.Context, channel *Channel, limit int64) []Video {
	if channel.UploadsPlaylistID() == "" {
		return nil
	}

	if limit <= 0 {
		limit = DefaultVideoCount
	}
	if limit > MaxSearchResults {
		limit = MaxSearchResults
	}

	params := url.Values{
		"part":       {"id,snippet"},
		"channelId":  {channel.ID},
		"maxResults": {strconv.FormatInt(limit, 10)},
		"order":      {"date"},
		"type":       {"video"},
	}

	status, body, err := c.get(ctx, "search", params)
	if err != nil || !is2xx(status) {
		logger.Log.Warn("recent video lookup failed",
			zap.String("channelId", channel.ID),
			zap.Int("status", status),
			zap.Error(err),
		)
		return nil
	}

	var searchResp searchListResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		logger.Log.Warn("recent video lookup returned malformed payload",
			zap.String("channelId", channel.ID),
			zap.Error(err),
		)
		return nil
	}

	videoIDs := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if validation.IsVideoID(item.ID.VideoID) {
			videoIDs = append(videoIDs, item.ID.VideoID)
		}
	}

	if len(videoIDs) == 0 {
		return nil
	}

	// One batched statistics call; its items supersede the search snippets
	// since they carry snippet and statistics together.
	params = url.Values{
		"part": {"statistics,snippet"},
		"id":   {strings.Join(videoIDs, ",")},
	}

	status, body, err = c.get(ctx, "videos", params)
	if err != nil || !is2xx(status) {
		logger.Log.Warn("video statistics lookup failed",
			zap.String("channelId", channel.ID),
			zap.Int("status", status),
			zap.Error(err),
		)
		return nil
	}

	var videosResp videoListResponse
	if err := json.Unmarshal(body, &videosResp); err != nil {
		logger.Log.Warn("video statistics lookup returned malformed payload",
			zap.String("channelId", channel.ID),
			zap.Error(err),
		)
		return nil
	}

	return videosResp.Items
}

// SearchChannels issues a single channel search. maxResults defaults to
// DefaultSearchResults and is clamped to MaxSearchResults before being sent
// upstream. Non-2xx responses surface with the raw status and body; no
// structured error envelope decoding is attempted on this path.
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int64) ([]SearchResult, error) {
	if maxResults <= 0 {
		maxResults = DefaultSearchResults
	}
	if maxResults > MaxSearchResults {
		maxResults = MaxSearchResults
	}

	params := url.Values{
		"part":       {"snippet"},
		"type":       {"channel"},
		"q":          {query},
		"maxResults": {strconv.FormatInt(maxResults, 10)},
	}

	status, body, err := c.get(ctx, "search", params)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, &StatusError{StatusCode: status, Body: string(body)}
	}

	var resp searchListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{What: "search results", Err: err}
	}

	return resp.Items, nil
}

// UploadsPlaylistID returns the channel's uploads playlist ID, or "" when
// the content details block or the playlist reference is absent.
func (ch *Channel) UploadsPlaylistID() string {
	if ch.ContentDetails == nil {
		return ""
	}
	return ch.ContentDetails.RelatedPlaylists.Uploads
}

// get performs one blocking GET against the API, with the key appended as a
// query parameter. It returns the status and raw body; only request
// construction, connection, and body-read failures become errors.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (int, []byte, error) {
	params.Set("key", c.apiKey)
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, nil, &TransportError{Op: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Op: endpoint, Err: err}
	}

	return resp.StatusCode, body, nil
}

// decodeStatusError turns a non-2xx channel-path response into a
// StatusError, preferring the API's structured error envelope and falling
// back to the raw body when the envelope doesn't decode.
func decodeStatusError(status int, body []byte) *StatusError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != 0 {
		statusErr := &StatusError{
			StatusCode: status,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
		}
		if len(envelope.Error.Errors) > 0 {
			statusErr.Reason = envelope.Error.Errors[0].Reason
		}
		return statusErr
	}

	return &StatusError{StatusCode: status, Body: string(body)}
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
