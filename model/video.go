package model

import "time"

type YoutubeVideoID string

// VideoCandidate is a search hit enriched with the metadata the quality
// filter needs.
type VideoCandidate struct {
	ID            YoutubeVideoID
	Title         string
	Duration      string
	PublishedAt   time.Time
	ChannelTitle  string
	ViewCount     uint64
	Embeddable    bool
	LiveBroadcast bool
}

type SearchQuery struct {
	Text           string
	PublishedAfter time.Time
	MaxResults     int64
}

type VideoTier string

const (
	TierStrict    VideoTier = "strict"
	TierBroadened VideoTier = "broadened"
	TierVerified  VideoTier = "verified"
	TierGeneric   VideoTier = "generic"
)

// ArchivedVideo is a curated selection recorded for later retrieval.
type ArchivedVideo struct {
	YoutubeID YoutubeVideoID `json:"youtubeId"`
	Title     string         `json:"title"`
	Hobby     string         `json:"hobby"`
	Day       int            `json:"day"`
	Tier      VideoTier      `json:"tier"`
}
