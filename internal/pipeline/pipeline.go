package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yt-dashboard/internal/models"
	"github.com/yt-dashboard/internal/youtube"
)

// Store is the persistence surface the pipeline needs.
type Store interface {
	UpsertChannel(ctx context.Context, channel *models.Channel) error
	UpsertVideos(ctx context.Context, details []models.VideoDetail) error
}

// Report is the outcome of one refresh. Complete is false when enumeration
// or any metadata batch failed; Videos then holds whatever was collected.
// Partial data is never persisted.
type Report struct {
	Channel   *models.Channel      `json:"channel"`
	Videos    []models.VideoDetail `json:"videos"`
	Complete  bool                 `json:"complete"`
	Persisted bool                 `json:"persisted"`
	Problems  []string             `json:"problems,omitempty"`
}

// Service runs the extraction pipeline: resolve, extract, enumerate, fetch,
// persist. One user trigger runs it to completion, sequentially.
type Service struct {
	yt     *youtube.Client
	store  Store
	logger *slog.Logger
}

func NewService(yt *youtube.Client, store Store, logger *slog.Logger) *Service {
	return &Service{
		yt:     yt,
		store:  store,
		logger: logger,
	}
}

// Refresh fetches everything for the channel the query names and upserts it
// into the store. A resolve or channel-extraction failure halts the pipeline
// before anything is written. Enumeration and metadata failures degrade the
// report to a partial one instead of aborting; persistence failures are
// returned to the caller.
func (s *Service) Refresh(ctx context.Context, query string) (*Report, error) {
	channelID, err := s.yt.ResolveChannelID(ctx, query)
	if err != nil {
		return nil, err
	}

	channel, err := s.yt.FetchChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Channel:  channel,
		Complete: true,
	}

	videoIDs, err := s.yt.ListVideoIDs(ctx, channelID)
	if err != nil {
		s.logger.Error("video enumeration incomplete",
			"channel", channelID, "collected", len(videoIDs), "error", err)
		report.Complete = false
		report.Problems = append(report.Problems, err.Error())
	}

	details, err := s.yt.FetchVideoDetails(ctx, channelID, videoIDs)
	if err != nil {
		s.logger.Error("video metadata fetch incomplete",
			"channel", channelID, "collected", len(details), "error", err)
		report.Complete = false
		report.Problems = append(report.Problems, err.Error())
	}
	report.Videos = details

	if !report.Complete {
		return report, nil
	}

	if err := s.store.UpsertChannel(ctx, channel); err != nil {
		return report, fmt.Errorf("persist channel: %w", err)
	}
	if err := s.store.UpsertVideos(ctx, details); err != nil {
		return report, fmt.Errorf("persist videos: %w", err)
	}
	report.Persisted = true

	s.logger.Info("channel refreshed", "channel", channelID, "videos", len(details))

	return report, nil
}
