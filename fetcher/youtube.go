package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ewintr.nl/hobbyplan/metrics"
	"ewintr.nl/hobbyplan/model"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"
)

var ErrQuotaExceeded = errors.New("youtube quota exceeded")

// videos.list accepts at most 50 ids per call.
const maxIDsPerCall = 50

var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"dailyLimitExceeded":    true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
}

// Youtube wraps the Data API. It is shared by all plan runs and safe for
// concurrent use.
type Youtube struct {
	Client  *youtube.Service
	limiter *rate.Limiter
	breaker *Breaker
	logger  *slog.Logger
}

func NewYoutube(client *youtube.Service, limiter *rate.Limiter, breaker *Breaker, logger *slog.Logger) *Youtube {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if breaker == nil {
		breaker = NewBreaker(DefaultBreakerConfig("youtube"), logger)
	}
	return &Youtube{
		Client:  client,
		limiter: limiter,
		breaker: breaker,
		logger:  logger,
	}
}

func (y *Youtube) SearchVideos(ctx context.Context, q model.SearchQuery) ([]model.YoutubeVideoID, error) {
	if err := y.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for search slot: %w", err)
	}
	ids, err := execute(y.breaker, func() ([]model.YoutubeVideoID, error) {
		call := y.Client.Search.
			List([]string{"id"}).
			Q(q.Text).
			Type("video").
			VideoEmbeddable("true").
			VideoSyndicated("true").
			RelevanceLanguage("en").
			RegionCode("US").
			SafeSearch("strict").
			MaxResults(q.MaxResults)
		if !q.PublishedAfter.IsZero() {
			call = call.PublishedAfter(q.PublishedAfter.UTC().Format(time.RFC3339))
		}

		response, err := call.Context(ctx).Do()
		if err != nil {
			return nil, y.classify(err)
		}

		ids := make([]model.YoutubeVideoID, 0, len(response.Items))
		for _, item := range response.Items {
			if item.Id == nil || item.Id.VideoId == "" {
				continue
			}
			ids = append(ids, model.YoutubeVideoID(item.Id.VideoId))
		}
		return ids, nil
	})
	record("youtube_search", err)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	return ids, nil
}

func (y *Youtube) FetchCandidates(ctx context.Context, ytIDs []model.YoutubeVideoID) ([]model.VideoCandidate, error) {
	cands := make([]model.VideoCandidate, 0, len(ytIDs))
	for start := 0; start < len(ytIDs); start += maxIDsPerCall {
		end := start + maxIDsPerCall
		if end > len(ytIDs) {
			end = len(ytIDs)
		}
		batch, err := y.fetchBatch(ctx, ytIDs[start:end])
		if err != nil {
			return nil, err
		}
		cands = append(cands, batch...)
	}

	return cands, nil
}

func (y *Youtube) fetchBatch(ctx context.Context, ytIDs []model.YoutubeVideoID) ([]model.VideoCandidate, error) {
	ids := make([]string, len(ytIDs))
	for i, id := range ytIDs {
		ids[i] = string(id)
	}

	if err := y.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for videos slot: %w", err)
	}
	cands, err := execute(y.breaker, func() ([]model.VideoCandidate, error) {
		call := y.Client.Videos.
			List([]string{"snippet", "contentDetails", "statistics", "status"}).
			Id(strings.Join(ids, ","))

		response, err := call.Context(ctx).Do()
		if err != nil {
			return nil, y.classify(err)
		}

		cands := make([]model.VideoCandidate, 0, len(response.Items))
		for _, item := range response.Items {
			cands = append(cands, toCandidate(item))
		}
		return cands, nil
	})
	record("youtube_videos", err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}

	return cands, nil
}

// classify marks quota errors on the breaker so it opens right away.
func (y *Youtube) classify(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	for _, item := range apiErr.Errors {
		if quotaReasons[item.Reason] {
			y.logger.Error("youtube quota exhausted", slog.String("reason", item.Reason))
			y.breaker.Exhausted()
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, item.Reason)
		}
	}

	return err
}

func toCandidate(item *youtube.Video) model.VideoCandidate {
	c := model.VideoCandidate{ID: model.YoutubeVideoID(item.Id)}
	if item.Snippet != nil {
		c.Title = item.Snippet.Title
		c.ChannelTitle = item.Snippet.ChannelTitle
		c.LiveBroadcast = item.Snippet.LiveBroadcastContent == "live" || item.Snippet.LiveBroadcastContent == "upcoming"
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			c.PublishedAt = t
		}
	}
	if item.ContentDetails != nil {
		c.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		c.ViewCount = item.Statistics.ViewCount
	}
	if item.Status != nil {
		c.Embeddable = item.Status.Embeddable
	}

	return c
}

func record(call string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.UpstreamCalls.WithLabelValues(call, result).Inc()
}
