package models

import "time"

// Channel represents a YouTube channel together with its aggregate statistics
type Channel struct {
	ChannelID    string    `json:"channelId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Subscribers  int64     `json:"subscriberCount"`
	TotalVideos  int64     `json:"videoCount"`
	TotalViews   int64     `json:"viewCount"`
	CreatedAt    time.Time `json:"createdAt"`
	ThumbnailURL string    `json:"thumbnailUrl"`
}
