package fetcher

import (
	"context"
	"net/http"
	"net/url"

	"ewintr.nl/hobbyplan/model"
	"golang.org/x/exp/slog"
)

const DefaultOEmbedURL = "https://www.youtube.com/oembed"

// EmbedProber checks a video through the public oEmbed endpoint. Removed,
// private and non-embeddable videos answer with an error status.
type EmbedProber struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

func NewEmbedProber(client *http.Client, baseURL string, logger *slog.Logger) *EmbedProber {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultOEmbedURL
	}
	return &EmbedProber{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (ep *EmbedProber) Available(ctx context.Context, id model.YoutubeVideoID) bool {
	q := url.Values{}
	q.Set("url", "https://www.youtube.com/watch?v="+string(id))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return false
	}
	resp, err := ep.client.Do(req)
	if err != nil {
		record("oembed_probe", err)
		ep.logger.Warn("failed to probe video", slog.String("video", string(id)), slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	record("oembed_probe", nil)

	return resp.StatusCode == http.StatusOK
}
