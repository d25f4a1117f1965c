package models

import "testing"

func TestEngagementRateZeroViews(t *testing.T) {
	if got := EngagementRate(100, 50, 0); got != 0 {
		t.Errorf("EngagementRate(100, 50, 0) = %v, want 0", got)
	}
}

func TestEngagementRateExact(t *testing.T) {
	tests := []struct {
		name                   string
		likes, comments, views int64
		want                   float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"no interactions", 0, 0, 500, 0},
		{"typical", 100, 10, 3000, float64(110) / float64(3000)},
		{"small", 50, 5, 2000, float64(55) / float64(2000)},
		{"more interactions than views", 10, 10, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EngagementRate(tt.likes, tt.comments, tt.views)
			if got != tt.want {
				t.Errorf("EngagementRate(%d, %d, %d) = %v, want %v",
					tt.likes, tt.comments, tt.views, got, tt.want)
			}
		})
	}
}

func TestVideoStatisticsEngagementRate(t *testing.T) {
	stats := VideoStatistics{VideoID: "v1", Views: 3000, Likes: 100, Comments: 10}
	want := float64(110) / float64(3000)
	if got := stats.EngagementRate(); got != want {
		t.Errorf("EngagementRate() = %v, want %v", got, want)
	}
}
