package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"
)

// timeLayout is the fixed Z-suffixed UTC format the Data API uses for
// publishedAt fields.
const timeLayout = "2006-01-02T15:04:05Z"

// maxPageSize is the YouTube Data API maximum for both search pages and
// video lookup batches.
const maxPageSize = 50

// ErrChannelNotFound signals that the channel is confirmed absent upstream,
// as opposed to a transport or API failure.
var ErrChannelNotFound = errors.New("channel not found")

// Client wraps the YouTube Data API v3 service used by the extraction
// pipeline.
type Client struct {
	service *youtubeapi.Service
}

// NewClient builds an authenticated YouTube client. Extra options are
// appended after the API key, which lets tests redirect the service at a
// fake endpoint.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtubeapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// bestThumbnail picks the highest-resolution thumbnail variant offered.
func bestThumbnail(t *youtubeapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*youtubeapi.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}
