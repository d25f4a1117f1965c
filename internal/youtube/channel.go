package youtube

import (
	"context"
	"fmt"
	"time"

	"github.com/yt-dashboard/internal/models"
)

// FetchChannel fetches one channel record combining snippet and statistics
// facets. A response with an empty item list means the channel is absent
// upstream.
func (c *Client) FetchChannel(ctx context.Context, channelID string) (*models.Channel, error) {
	call := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx)
	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}

	if len(response.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	item := response.Items[0]
	if item.Snippet == nil || item.Statistics == nil {
		return nil, fmt.Errorf("fetch channel %s: response missing snippet or statistics", channelID)
	}

	channel := &models.Channel{
		ChannelID:    channelID,
		Name:         item.Snippet.Title,
		Description:  item.Snippet.Description,
		Subscribers:  int64(item.Statistics.SubscriberCount),
		TotalVideos:  int64(item.Statistics.VideoCount),
		TotalViews:   int64(item.Statistics.ViewCount),
		ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
	}

	if createdAt, err := time.Parse(timeLayout, item.Snippet.PublishedAt); err == nil {
		channel.CreatedAt = createdAt
	}

	return channel, nil
}
