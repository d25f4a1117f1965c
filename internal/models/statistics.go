package models

// VideoStatistics holds the raw engagement counters for one video. Counts
// missing upstream default to zero.
type VideoStatistics struct {
	VideoID  string `json:"videoId"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
}

// EngagementRate returns (likes + comments) / views, or 0 when the video has
// no views. The value is derived on demand and never persisted.
func (s VideoStatistics) EngagementRate() float64 {
	return EngagementRate(s.Likes, s.Comments, s.Views)
}

// EngagementRate is the normalized interaction metric used across the
// dashboard.
func EngagementRate(likes, comments, views int64) float64 {
	if views == 0 {
		return 0
	}
	return float64(likes+comments) / float64(views)
}
