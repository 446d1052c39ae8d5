package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ewintr.nl/hobbyplan/model"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const searchReply = `{
  "items": [
    {"id": {"kind": "youtube#video", "videoId": "abcdefghijk"}},
    {"id": {"kind": "youtube#channel", "channelId": "UCxyz"}},
    {"id": {"kind": "youtube#video", "videoId": "lmnopqrstuv"}}
  ]
}`

const videosReply = `{
  "items": [
    {
      "id": "abcdefghijk",
      "snippet": {
        "title": "Guitar Basics Tutorial",
        "channelTitle": "Lessons",
        "publishedAt": "2024-03-01T10:00:00Z",
        "liveBroadcastContent": "none"
      },
      "contentDetails": {"duration": "PT12M30S"},
      "statistics": {"viewCount": "123456"},
      "status": {"embeddable": true}
    },
    {
      "id": "lmnopqrstuv",
      "snippet": {"title": "Live Now", "liveBroadcastContent": "live", "publishedAt": "2024-05-01T00:00:00Z"},
      "contentDetails": {"duration": "P0D"},
      "statistics": {"viewCount": "10"},
      "status": {"embeddable": false}
    }
  ]
}`

const quotaReply = `{
  "error": {
    "code": 403,
    "message": "The request cannot be completed because you have exceeded your quota.",
    "errors": [{"message": "quota", "domain": "youtube.quota", "reason": "quotaExceeded"}]
  }
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestYoutube(t *testing.T, handler http.HandlerFunc) *Youtube {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := youtube.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return NewYoutube(svc, nil, NewBreaker(DefaultBreakerConfig("youtube-test"), testLogger()), testLogger())
}

func TestYoutubeSearchVideos(t *testing.T) {
	var gotQuery string
	yt := newTestYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/search"), r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchReply))
	})

	ids, err := yt.SearchVideos(context.Background(), model.SearchQuery{
		Text:           "guitar beginner basics",
		PublishedAfter: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaxResults:     25,
	})

	require.NoError(t, err)
	assert.Equal(t, []model.YoutubeVideoID{"abcdefghijk", "lmnopqrstuv"}, ids)
	for _, want := range []string{"type=video", "videoEmbeddable=true", "safeSearch=strict", "maxResults=25", "publishedAfter=2020-01-01T00%3A00%3A00Z"} {
		assert.Contains(t, gotQuery, want)
	}
}

func TestYoutubeFetchCandidates(t *testing.T) {
	yt := newTestYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/videos"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(videosReply))
	})

	cands, err := yt.FetchCandidates(context.Background(), []model.YoutubeVideoID{"abcdefghijk", "lmnopqrstuv"})

	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, model.VideoCandidate{
		ID:           "abcdefghijk",
		Title:        "Guitar Basics Tutorial",
		Duration:     "PT12M30S",
		PublishedAt:  time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		ChannelTitle: "Lessons",
		ViewCount:    123456,
		Embeddable:   true,
	}, cands[0])
	assert.True(t, cands[1].LiveBroadcast)
	assert.False(t, cands[1].Embeddable)
}

func TestYoutubeQuotaOpensBreaker(t *testing.T) {
	var calls atomic.Int32
	yt := newTestYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(quotaReply))
	})

	_, err := yt.SearchVideos(context.Background(), model.SearchQuery{Text: "guitar"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, gobreaker.StateOpen, yt.breaker.State())

	_, err = yt.SearchVideos(context.Background(), model.SearchQuery{Text: "guitar"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(1), calls.Load())
}

func TestBreakerIgnoresCallerCancellation(t *testing.T) {
	b := NewBreaker(DefaultBreakerConfig("cancel-test"), testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 10; i++ {
		_, err := execute(b, func() (int, error) {
			return 0, fmt.Errorf("failed to call: %w", ctx.Err())
		})
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())

	got, err := execute(b, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestBreakerOpensOnUpstreamFailures(t *testing.T) {
	b := NewBreaker(DefaultBreakerConfig("failure-test"), testLogger())

	for i := 0; i < 5; i++ {
		_, _ = execute(b, func() (int, error) { return 0, errors.New("upstream down") })
	}

	assert.Equal(t, gobreaker.StateOpen, b.State())
}

func TestYoutubeCancelledSearchKeepsBreakerClosed(t *testing.T) {
	var calls atomic.Int32
	yt := newTestYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchReply))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 10; i++ {
		_, err := yt.SearchVideos(ctx, model.SearchQuery{Text: "guitar"})
		assert.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateClosed, yt.breaker.State())

	ids, err := yt.SearchVideos(context.Background(), model.SearchQuery{Text: "guitar"})
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Equal(t, int32(1), calls.Load())
}
