package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yt-dashboard/internal/models"
	"github.com/yt-dashboard/internal/youtube"
	"google.golang.org/api/option"
)

type fakeStore struct {
	channels    []*models.Channel
	videoRows   []models.VideoDetail
	channelErr  error
	videosErr   error
	upsertCalls int
}

func (f *fakeStore) UpsertChannel(_ context.Context, channel *models.Channel) error {
	f.upsertCalls++
	if f.channelErr != nil {
		return f.channelErr
	}
	f.channels = append(f.channels, channel)
	return nil
}

func (f *fakeStore) UpsertVideos(_ context.Context, details []models.VideoDetail) error {
	f.upsertCalls++
	if f.videosErr != nil {
		return f.videosErr
	}
	f.videoRows = append(f.videoRows, details...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scenarioHandler serves the UCabc123 test channel: two videos, v1 with
// 3000 views / 100 likes / 10 comments and v2 with 2000 / 50 / 5.
func scenarioHandler(videosStatus int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/channels"):
			fmt.Fprint(w, `{"items":[{
				"id":"UCabc123",
				"snippet":{"title":"Scenario Channel","publishedAt":"2019-06-01T12:00:00Z","thumbnails":{"high":{"url":"http://img/c.jpg"}}},
				"statistics":{"subscriberCount":"1000","videoCount":"2","viewCount":"5000"}
			}]}`)
		case strings.HasSuffix(r.URL.Path, "/search"):
			fmt.Fprint(w, `{"items":[{"id":{"videoId":"v1"}},{"id":{"videoId":"v2"}}]}`)
		case strings.HasSuffix(r.URL.Path, "/videos"):
			if videosStatus != http.StatusOK {
				http.Error(w, "backend error", videosStatus)
				return
			}
			fmt.Fprint(w, `{"items":[
				{"id":"v1","snippet":{"title":"first","publishedAt":"2024-02-01T00:00:00Z"},"contentDetails":{"duration":"PT10M"},"statistics":{"viewCount":"3000","likeCount":"100","commentCount":"10"}},
				{"id":"v2","snippet":{"title":"second","publishedAt":"2024-01-01T00:00:00Z"},"contentDetails":{"duration":"PT5M"},"statistics":{"viewCount":"2000","likeCount":"50","commentCount":"5"}}
			]}`)
		default:
			http.NotFound(w, r)
		}
	})
}

func newTestService(t *testing.T, handler http.Handler, store Store) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := youtube.NewClient(context.Background(), "test-key", option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return NewService(client, store, testLogger())
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func TestRefreshEndToEnd(t *testing.T) {
	store := &fakeStore{}
	service := newTestService(t, scenarioHandler(http.StatusOK), store)

	report, err := service.Refresh(context.Background(), "UCabc123")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if !report.Complete {
		t.Error("report.Complete = false, want true")
	}
	if !report.Persisted {
		t.Error("report.Persisted = false, want true")
	}

	if report.Channel.Subscribers != 1000 || report.Channel.TotalVideos != 2 || report.Channel.TotalViews != 5000 {
		t.Errorf("channel = %+v, want subscribers 1000, videos 2, views 5000", report.Channel)
	}

	if len(report.Videos) != 2 {
		t.Fatalf("got %d video rows, want 2", len(report.Videos))
	}
	if report.Videos[0].Video.VideoID != "v1" || report.Videos[1].Video.VideoID != "v2" {
		t.Errorf("video order = [%s %s], want [v1 v2]",
			report.Videos[0].Video.VideoID, report.Videos[1].Video.VideoID)
	}

	if got := round4(report.Videos[0].Statistics.EngagementRate()); got != 0.0367 {
		t.Errorf("v1 engagement rate = %v, want 0.0367", got)
	}
	if got := round4(report.Videos[1].Statistics.EngagementRate()); got != 0.0275 {
		t.Errorf("v2 engagement rate = %v, want 0.0275", got)
	}

	if len(store.channels) != 1 {
		t.Fatalf("persisted %d channels, want 1", len(store.channels))
	}
	if store.channels[0].ChannelID != "UCabc123" {
		t.Errorf("persisted channel = %q, want UCabc123", store.channels[0].ChannelID)
	}
	if len(store.videoRows) != 2 {
		t.Errorf("persisted %d video rows, want 2", len(store.videoRows))
	}
}

func TestRefreshPartialFetchIsNotPersisted(t *testing.T) {
	store := &fakeStore{}
	service := newTestService(t, scenarioHandler(http.StatusInternalServerError), store)

	report, err := service.Refresh(context.Background(), "UCabc123")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if report.Complete {
		t.Error("report.Complete = true, want false after a failed metadata batch")
	}
	if report.Persisted {
		t.Error("report.Persisted = true, want false")
	}
	if len(report.Problems) == 0 {
		t.Error("report.Problems is empty, want at least one entry")
	}
	if store.upsertCalls != 0 {
		t.Errorf("store received %d upsert calls, want 0 for a partial fetch", store.upsertCalls)
	}
}

func TestRefreshChannelNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	})
	store := &fakeStore{}
	service := newTestService(t, handler, store)

	_, err := service.Refresh(context.Background(), "no such channel")
	if !errors.Is(err, youtube.ErrChannelNotFound) {
		t.Errorf("Refresh() error = %v, want ErrChannelNotFound", err)
	}
	if store.upsertCalls != 0 {
		t.Errorf("store received %d upsert calls, want 0", store.upsertCalls)
	}
}

func TestRefreshPersistenceFailureSurfaces(t *testing.T) {
	store := &fakeStore{videosErr: errors.New("connection reset")}
	service := newTestService(t, scenarioHandler(http.StatusOK), store)

	report, err := service.Refresh(context.Background(), "UCabc123")
	if err == nil {
		t.Fatal("Refresh() error = nil, want persistence failure")
	}
	if report == nil {
		t.Fatal("Refresh() report = nil, want fetched data alongside the error")
	}
	if report.Persisted {
		t.Error("report.Persisted = true, want false")
	}
}
