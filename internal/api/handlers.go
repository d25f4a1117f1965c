package api

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yt-dashboard/internal/models"
	"github.com/yt-dashboard/internal/storage"
	"github.com/yt-dashboard/internal/youtube"
)

const (
	recentVideoLimit = 20
	topVideoLimit    = 10
)

// videoView is the flat per-video shape the dashboard renders, including
// the derived engagement rate.
type videoView struct {
	VideoID        string    `json:"videoId"`
	Title          string    `json:"title"`
	PublishedAt    time.Time `json:"publishedAt"`
	Duration       string    `json:"duration"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	Views          int64     `json:"views"`
	Likes          int64     `json:"likes"`
	Comments       int64     `json:"comments"`
	EngagementRate float64   `json:"engagementRate"`
}

type dashboardResponse struct {
	Channel      *models.Channel `json:"channel"`
	RecentVideos []videoView     `json:"recentVideos"`
	TopVideos    []videoView     `json:"topVideosByViews"`
	Complete     bool            `json:"complete"`
	Persisted    bool            `json:"persisted"`
	Problems     []string        `json:"problems,omitempty"`
}

// resolveChannel maps a raw ID, handle or channel name to a canonical
// channel ID.
func (s *Server) resolveChannel(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	channelID, err := s.source.ResolveChannelID(c.Request.Context(), query)
	if errors.Is(err, youtube.ErrChannelNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
		return
	}
	if err != nil {
		s.logger.Error("channel resolve failed", "query", query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"channelId": channelID})
}

// getChannel fetches live channel details from the upstream API.
func (s *Server) getChannel(c *gin.Context) {
	channelID := c.Param("id")

	channel, err := s.source.FetchChannel(c.Request.Context(), channelID)
	if errors.Is(err, youtube.ErrChannelNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
		return
	}
	if err != nil {
		s.logger.Error("channel fetch failed", "channel", channelID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, channel)
}

// refreshChannel runs the full pipeline for the queried channel and responds
// with the dashboard payload. An incomplete fetch is returned as-is, flagged
// incomplete and unpersisted; a persistence failure is surfaced to the
// caller.
func (s *Server) refreshChannel(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	report, err := s.refresher.Refresh(c.Request.Context(), query)
	if errors.Is(err, youtube.ErrChannelNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
		return
	}
	if err != nil {
		s.logger.Error("channel refresh failed", "query", query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, buildDashboard(report.Channel, report.Videos, report.Complete, report.Persisted, report.Problems))
}

// getStoredChannel reads the persisted channel and videos back from the
// relational store.
func (s *Server) getStoredChannel(c *gin.Context) {
	channelID := c.Param("id")

	channel, err := s.reader.GetChannel(c.Request.Context(), channelID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not stored"})
		return
	}
	if err != nil {
		s.logger.Error("stored channel read failed", "channel", channelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	videos, err := s.reader.ListVideos(c.Request.Context(), channelID, 0)
	if err != nil {
		s.logger.Error("stored videos read failed", "channel", channelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, buildDashboard(channel, videos, true, true, nil))
}

func buildDashboard(channel *models.Channel, videos []models.VideoDetail, complete, persisted bool, problems []string) dashboardResponse {
	recent := make([]videoView, 0, recentVideoLimit)
	for _, detail := range videos {
		if len(recent) == recentVideoLimit {
			break
		}
		recent = append(recent, toVideoView(detail))
	}

	byViews := make([]models.VideoDetail, len(videos))
	copy(byViews, videos)
	sort.SliceStable(byViews, func(i, j int) bool {
		return byViews[i].Statistics.Views > byViews[j].Statistics.Views
	})

	top := make([]videoView, 0, topVideoLimit)
	for _, detail := range byViews {
		if len(top) == topVideoLimit {
			break
		}
		top = append(top, toVideoView(detail))
	}

	return dashboardResponse{
		Channel:      channel,
		RecentVideos: recent,
		TopVideos:    top,
		Complete:     complete,
		Persisted:    persisted,
		Problems:     problems,
	}
}

func toVideoView(detail models.VideoDetail) videoView {
	return videoView{
		VideoID:        detail.Video.VideoID,
		Title:          detail.Video.Title,
		PublishedAt:    detail.Video.PublishedAt,
		Duration:       detail.Video.Duration,
		ThumbnailURL:   detail.Video.ThumbnailURL,
		Views:          detail.Statistics.Views,
		Likes:          detail.Statistics.Likes,
		Comments:       detail.Statistics.Comments,
		EngagementRate: detail.Statistics.EngagementRate(),
	}
}
