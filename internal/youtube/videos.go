package youtube

import (
	"context"
	"fmt"
	"time"

	"github.com/yt-dashboard/internal/models"
	youtubeapi "google.golang.org/api/youtube/v3"
)

// ListVideoIDs walks the channel's full video catalog newest first, one
// search page of 50 items per round trip, following the continuation token
// until the final page. On a mid-loop failure it returns the IDs collected
// so far together with the error, so callers can tell a partial walk from a
// complete one.
func (c *Client) ListVideoIDs(ctx context.Context, channelID string) ([]string, error) {
	var ids []string
	pageToken := ""

	for {
		call := c.service.Search.List([]string{"id"}).
			ChannelId(channelID).
			Type("video").
			Order("date").
			MaxResults(maxPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return ids, fmt.Errorf("list videos for channel %s: %w", channelID, err)
		}

		for _, item := range response.Items {
			if item.Id != nil && item.Id.VideoId != "" {
				ids = append(ids, item.Id.VideoId)
			}
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}

// FetchVideoDetails batch-fetches metadata and statistics for the given
// video IDs, 50 per request. A failed batch returns the rows accumulated
// from the batches before it together with the error.
func (c *Client) FetchVideoDetails(ctx context.Context, channelID string, videoIDs []string) ([]models.VideoDetail, error) {
	var details []models.VideoDetail

	for i := 0; i < len(videoIDs); i += maxPageSize {
		end := i + maxPageSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		call := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(videoIDs[i:end]...).
			Context(ctx)
		response, err := call.Do()
		if err != nil {
			return details, fmt.Errorf("fetch video details batch: %w", err)
		}

		for _, item := range response.Items {
			details = append(details, flattenVideo(channelID, item))
		}
	}

	return details, nil
}

// flattenVideo turns one API item into a typed row. Missing snippet text
// defaults to empty strings and missing counters to zero; the duration stays
// in its raw ISO-8601 form.
func flattenVideo(channelID string, item *youtubeapi.Video) models.VideoDetail {
	video := models.Video{
		VideoID:   item.Id,
		ChannelID: channelID,
	}
	stats := models.VideoStatistics{
		VideoID: item.Id,
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.Description = item.Snippet.Description
		video.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
		if publishedAt, err := time.Parse(timeLayout, item.Snippet.PublishedAt); err == nil {
			video.PublishedAt = publishedAt
		}
	}
	if item.ContentDetails != nil {
		video.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		stats.Views = int64(item.Statistics.ViewCount)
		stats.Likes = int64(item.Statistics.LikeCount)
		stats.Comments = int64(item.Statistics.CommentCount)
	}

	return models.VideoDetail{Video: video, Statistics: stats}
}
