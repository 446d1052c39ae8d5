package process

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ewintr.nl/hobbyplan/assemble"
	"ewintr.nl/hobbyplan/curate"
	"ewintr.nl/hobbyplan/hobby"
	"ewintr.nl/hobbyplan/metrics"
	"ewintr.nl/hobbyplan/model"
	"ewintr.nl/hobbyplan/plantext"
	"ewintr.nl/hobbyplan/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultParallelism = 3
	persistTimeout     = 5 * time.Second
)

var ErrInvalidRequest = errors.New("invalid plan request")

// Planner runs the whole pipeline for one request: hobby resolution, plan
// text, seven video selections and assembly.
type Planner struct {
	normalizer  *hobby.Normalizer
	text        *plantext.Generator
	curator     *curate.Curator
	assembler   *assemble.Assembler
	plans       storage.PlanRepository
	archive     storage.VideoArchive
	validate    *validator.Validate
	parallelism int
	logger      *slog.Logger
}

// NewPlanner wires the pipeline. plans and archive are optional.
func NewPlanner(normalizer *hobby.Normalizer, text *plantext.Generator, curator *curate.Curator, assembler *assemble.Assembler, plans storage.PlanRepository, archive storage.VideoArchive, parallelism int, logger *slog.Logger) *Planner {
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}
	return &Planner{
		normalizer:  normalizer,
		text:        text,
		curator:     curator,
		assembler:   assembler,
		plans:       plans,
		archive:     archive,
		validate:    validator.New(),
		parallelism: parallelism,
		logger:      logger,
	}
}

func (p *Planner) ValidateHobby(raw string) model.HobbyResolution {
	return p.normalizer.Resolve(raw)
}

// GeneratePlan returns a complete seven-day plan. The only failure for a
// well-formed request is a *model.InvalidHobbyError.
func (p *Planner) GeneratePlan(ctx context.Context, req model.PlanRequest) (*model.PlanRecord, error) {
	start := time.Now()

	if err := p.validate.Struct(req); err != nil {
		metrics.PlansGenerated.WithLabelValues("invalid_request").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	res := p.normalizer.Resolve(req.Hobby)
	if !res.IsValid {
		p.logger.Info("rejected hobby", slog.String("raw", req.Hobby), slog.String("message", res.Message))
		metrics.PlansGenerated.WithLabelValues("invalid_hobby").Inc()
		return nil, &model.InvalidHobbyError{Resolution: res}
	}
	experience := model.ParseExperience(req.Experience)
	logger := p.logger.With(slog.String("hobby", res.Hobby))
	logger.Info("generating plan", slog.String("experience", string(experience)))

	text := p.text.Generate(ctx, res.Hobby, experience, req.TimeAvailable, req.Goal)
	sels := p.selectVideos(ctx, res.Hobby, experience, text)

	record := p.assembler.Assemble(res, req, text, sels)
	record.ID = uuid.New()
	record.CreatedAt = time.Now().UTC()

	// the plan is returned either way, so storing it outlives the caller
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	p.archiveVideos(persistCtx, res.Hobby, sels)
	if p.plans != nil {
		if err := p.plans.Save(persistCtx, &record); err != nil {
			logger.Error("failed to save plan", slog.String("plan", record.ID.String()), slog.String("error", err.Error()))
		}
	}

	metrics.PlansGenerated.WithLabelValues("ok").Inc()
	metrics.PlanDuration.Observe(time.Since(start).Seconds())
	logger.Info("generated plan",
		slog.String("plan", record.ID.String()),
		slog.String("text", string(record.TextSource)),
		slog.String("duration", time.Since(start).String()),
	)

	return &record, nil
}

func (p *Planner) FindPlan(ctx context.Context, id uuid.UUID) (*model.PlanRecord, error) {
	if p.plans == nil {
		return nil, storage.ErrNotFound
	}
	return p.plans.FindByID(ctx, id)
}

// selectVideos runs the seven selections with bounded parallelism. Results
// are written by day index, so order does not depend on completion.
func (p *Planner) selectVideos(ctx context.Context, name string, experience model.Experience, text model.TextPlan) []curate.Selection {
	run := p.curator.Begin()
	sels := make([]curate.Selection, model.TotalDays)

	var g errgroup.Group
	g.SetLimit(p.parallelism)
	for i := 0; i < model.TotalDays; i++ {
		q := curate.DayQuery{
			Hobby:      name,
			Experience: experience,
			Day:        i + 1,
		}
		if i < len(text.Days) {
			q.Title = text.Days[i].Title
			q.MainTask = text.Days[i].MainTask
		}
		i := i
		g.Go(func() error {
			sels[i] = run.SelectVideo(ctx, q)
			return nil
		})
	}
	_ = g.Wait()

	return sels
}

// archiveVideos records the curated selections. Generic pool videos are not
// about the hobby, so they are skipped.
func (p *Planner) archiveVideos(ctx context.Context, name string, sels []curate.Selection) {
	if p.archive == nil {
		return
	}
	for i, sel := range sels {
		if sel.VideoID == "" || sel.Tier == model.TierGeneric {
			continue
		}
		v := model.ArchivedVideo{
			YoutubeID: sel.VideoID,
			Title:     sel.Title,
			Hobby:     name,
			Day:       i + 1,
			Tier:      sel.Tier,
		}
		if err := p.archive.Save(ctx, v); err != nil {
			p.logger.Warn("failed to archive video", slog.String("video", string(v.YoutubeID)), slog.String("error", err.Error()))
		}
	}
}
