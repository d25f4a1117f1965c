package models

import "time"

// Video represents the descriptive metadata of a single video. Duration is
// kept as the ISO-8601 string YouTube returns; the schema stores it as
// opaque text.
type Video struct {
	VideoID      string    `json:"videoId"`
	ChannelID    string    `json:"channelId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PublishedAt  time.Time `json:"publishedAt"`
	Duration     string    `json:"duration"`
	ThumbnailURL string    `json:"thumbnailUrl"`
}

// VideoDetail is the flattened row produced by the metadata fetcher: one
// video plus its statistics.
type VideoDetail struct {
	Video      Video           `json:"video"`
	Statistics VideoStatistics `json:"statistics"`
}
