package curate

import (
	"context"
	"time"

	"ewintr.nl/hobbyplan/metrics"
	"ewintr.nl/hobbyplan/model"
	"golang.org/x/exp/slog"
)

const (
	DefaultCallTimeout  = 4 * time.Second
	DefaultProbeTimeout = 2 * time.Second
	DefaultMaxResults   = 25
	maxProbes           = 5
)

type VideoSearcher interface {
	SearchVideos(ctx context.Context, q model.SearchQuery) ([]model.YoutubeVideoID, error)
}

type CandidateFetcher interface {
	FetchCandidates(ctx context.Context, ids []model.YoutubeVideoID) ([]model.VideoCandidate, error)
}

type AvailabilityProber interface {
	Available(ctx context.Context, id model.YoutubeVideoID) bool
}

type Config struct {
	CallTimeout  time.Duration
	ProbeTimeout time.Duration
	MaxResults   int64
	Now          func() time.Time
}

// Curator holds the shared collaborators. Any of them may be nil, in which
// case the tiers that need it are skipped.
type Curator struct {
	searcher VideoSearcher
	details  CandidateFetcher
	prober   AvailabilityProber
	config   Config
	logger   *slog.Logger
}

func NewCurator(searcher VideoSearcher, details CandidateFetcher, prober AvailabilityProber, config Config, logger *slog.Logger) *Curator {
	if config.CallTimeout <= 0 {
		config.CallTimeout = DefaultCallTimeout
	}
	if config.ProbeTimeout <= 0 {
		config.ProbeTimeout = DefaultProbeTimeout
	}
	if config.MaxResults <= 0 {
		config.MaxResults = DefaultMaxResults
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &Curator{
		searcher: searcher,
		details:  details,
		prober:   prober,
		config:   config,
		logger:   logger,
	}
}

// Begin starts the selection for one plan. Videos are unique within a run,
// runs do not see each other.
func (c *Curator) Begin() *Run {
	return &Run{
		curator:  c,
		registry: NewRegistry(),
	}
}

type DayQuery struct {
	Hobby      string
	Experience model.Experience
	Day        int
	Title      string
	MainTask   string
}

type Selection struct {
	VideoID model.YoutubeVideoID
	Title   string
	Tier    model.VideoTier
}

type Run struct {
	curator  *Curator
	registry *UsedVideoRegistry
}

func (r *Run) Registry() *UsedVideoRegistry {
	return r.registry
}

// SelectVideo always returns a video. The search tiers come first, then the
// verified table, then the generic pool. Safe for concurrent use by the days
// of one run.
func (r *Run) SelectVideo(ctx context.Context, q DayQuery) Selection {
	q.Day = clampDay(q.Day)

	if ctx.Err() == nil {
		tiers := []struct {
			tier      model.VideoTier
			qualifier string
		}{
			{model.TierStrict, qualifierFor(q.Experience)},
			{model.TierBroadened, broadenedQualifier},
		}
		for _, t := range tiers {
			if sel, ok := r.search(ctx, q, t.tier, t.qualifier); ok {
				return r.selected(q, sel)
			}
			if ctx.Err() != nil {
				break
			}
		}
	}

	for _, v := range Verified(q.Hobby, q.Day) {
		if r.registry.Claim(v.ID) {
			return r.selected(q, Selection{VideoID: v.ID, Title: v.Title, Tier: model.TierVerified})
		}
	}

	v := GenericVideo(q.Hobby, q.Day, r.registry)
	return r.selected(q, Selection{VideoID: v.ID, Title: v.Title, Tier: model.TierGeneric})
}

func (r *Run) selected(q DayQuery, sel Selection) Selection {
	r.curator.logger.Info("selected video",
		slog.String("hobby", q.Hobby),
		slog.Int("day", q.Day),
		slog.String("video", string(sel.VideoID)),
		slog.String("tier", string(sel.Tier)),
	)
	metrics.VideoSelections.WithLabelValues(string(sel.Tier)).Inc()

	return sel
}

func (r *Run) search(ctx context.Context, q DayQuery, tier model.VideoTier, qualifier string) (Selection, bool) {
	c := r.curator
	if c.searcher == nil || c.details == nil {
		return Selection{}, false
	}
	now := c.config.Now()
	logger := c.logger.With(slog.String("hobby", q.Hobby), slog.Int("day", q.Day), slog.String("tier", string(tier)))

	ids, err := r.searchIDs(ctx, model.SearchQuery{
		Text:           BuildQuery(q.Hobby, qualifier, q.Day, now),
		PublishedAfter: PublishedCutoff,
		MaxResults:     c.config.MaxResults,
	})
	if err != nil {
		logger.Warn("video search unavailable", slog.String("error", err.Error()))
		return Selection{}, false
	}
	if len(ids) == 0 {
		logger.Info("no search results")
		return Selection{}, false
	}

	dctx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	defer cancel()
	cands, err := c.details.FetchCandidates(dctx, ids)
	if err != nil {
		logger.Warn("video details unavailable", slog.String("error", err.Error()))
		return Selection{}, false
	}

	crit := newCriteria(q.Hobby, q.Day)
	valid := make([]model.VideoCandidate, 0, len(cands))
	for _, cand := range cands {
		if ok, rule := qualifies(cand, crit); !ok {
			logger.Debug("rejected candidate", slog.String("video", string(cand.ID)), slog.String("rule", rule))
			continue
		}
		valid = append(valid, cand)
	}
	if len(valid) == 0 {
		logger.Info("no qualifying candidates", slog.Int("candidates", len(cands)))
		return Selection{}, false
	}

	probes := 0
	for _, cand := range rank(valid, newScoreContext(q.Hobby, q.Title, q.MainTask, now)) {
		if r.registry.Contains(cand.ID) {
			continue
		}
		if probes >= maxProbes {
			break
		}
		probes++
		if !r.available(ctx, cand.ID) {
			logger.Info("video not available", slog.String("video", string(cand.ID)))
			continue
		}
		if r.registry.Claim(cand.ID) {
			return Selection{VideoID: cand.ID, Title: cand.Title, Tier: tier}, true
		}
	}

	return Selection{}, false
}

func (r *Run) searchIDs(ctx context.Context, query model.SearchQuery) ([]model.YoutubeVideoID, error) {
	sctx, cancel := context.WithTimeout(ctx, r.curator.config.CallTimeout)
	defer cancel()

	ids, err := r.curator.searcher.SearchVideos(sctx, query)
	if err != nil {
		return nil, err
	}

	seen := make(map[model.YoutubeVideoID]bool, len(ids))
	unique := make([]model.YoutubeVideoID, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] || r.registry.Contains(id) {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	return unique, nil
}

func (r *Run) available(ctx context.Context, id model.YoutubeVideoID) bool {
	if r.curator.prober == nil {
		return true
	}
	pctx, cancel := context.WithTimeout(ctx, r.curator.config.ProbeTimeout)
	defer cancel()

	return r.curator.prober.Available(pctx, id)
}
