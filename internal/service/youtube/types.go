package youtube

// Raw YouTube Data API v3 response shapes. Numeric statistics arrive as
// decimal strings and stay that way until normalization.

// Channel is a full record from the channels endpoint.
type Channel struct {
	ID               string            `json:"id"`
	Snippet          ChannelSnippet    `json:"snippet"`
	Statistics       ChannelStatistics `json:"statistics"`
	ContentDetails   *ContentDetails   `json:"contentDetails"`
	BrandingSettings *BrandingSettings `json:"brandingSettings"`
}

// ChannelSnippet holds the descriptive channel fields.
type ChannelSnippet struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CustomURL   string     `json:"customUrl"`
	PublishedAt string     `json:"publishedAt"`
	Country     string     `json:"country"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

// ChannelStatistics holds channel-level counters as decimal strings.
type ChannelStatistics struct {
	ViewCount             string `json:"viewCount"`
	SubscriberCount       string `json:"subscriberCount"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
	VideoCount            string `json:"videoCount"`
}

// ContentDetails carries the system playlists of a channel.
type ContentDetails struct {
	RelatedPlaylists RelatedPlaylists `json:"relatedPlaylists"`
}

// RelatedPlaylists names the channel's system-generated playlists.
type RelatedPlaylists struct {
	Uploads string `json:"uploads"`
	Likes   string `json:"likes"`
}

// BrandingSettings is the channel branding block.
type BrandingSettings struct {
	Channel *ChannelBranding `json:"channel"`
}

// ChannelBranding holds owner-configured branding fields.
type ChannelBranding struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Thumbnails groups the size variants; absent variants stay nil.
type Thumbnails struct {
	Default *Thumbnail `json:"default"`
	Medium  *Thumbnail `json:"medium"`
	High    *Thumbnail `json:"high"`
}

// Thumbnail is a single image variant.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Video is an item from the videos endpoint; statistics may be absent
// entirely for some videos.
type Video struct {
	ID         string           `json:"id"`
	Snippet    VideoSnippet     `json:"snippet"`
	Statistics *VideoStatistics `json:"statistics"`
}

// VideoSnippet holds the descriptive video fields.
type VideoSnippet struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PublishedAt string     `json:"publishedAt"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

// VideoStatistics holds per-video counters as decimal strings.
type VideoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// SearchResult is one hit from the search endpoint. The id object carries
// either a channelId or a videoId depending on the requested type.
type SearchResult struct {
	ID      SearchResultID `json:"id"`
	Snippet ChannelSnippet `json:"snippet"`
}

// SearchResultID is the polymorphic id object of a search hit.
type SearchResultID struct {
	Kind      string `json:"kind"`
	ChannelID string `json:"channelId"`
	VideoID   string `json:"videoId"`
}

// Wire envelopes.

type channelListResponse struct {
	Items []Channel `json:"items"`
}

type searchListResponse struct {
	Items []SearchResult `json:"items"`
}

type videoListResponse struct {
	Items []Video `json:"items"`
}

// errorEnvelope is the structured error body the API returns on non-2xx.
type errorEnvelope struct {
	Error apiErrorBody `json:"error"`
}

type apiErrorBody struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Errors  []apiErrorDetail `json:"errors"`
}

type apiErrorDetail struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
}
