// Package plantext writes the seven days of instructional text for a plan.
//
// A remote completion is tried first under a hard deadline. Whatever goes
// wrong with it, the caller gets the deterministic fallback plan instead of
// an error.
package plantext

import (
	"context"
	"errors"
	"time"

	"ewintr.nl/hobbyplan/metrics"
	"ewintr.nl/hobbyplan/model"
	"golang.org/x/exp/slog"
)

const DefaultTimeout = 8 * time.Second

type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Generator struct {
	completer Completer
	timeout   time.Duration
	logger    *slog.Logger
}

// NewGenerator returns a generator that only uses the fallback when
// completer is nil.
func NewGenerator(completer Completer, timeout time.Duration, logger *slog.Logger) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{
		completer: completer,
		timeout:   timeout,
		logger:    logger,
	}
}

func (g *Generator) Generate(ctx context.Context, hobby string, experience model.Experience, timeAvailable, goal string) model.TextPlan {
	if g.completer == nil {
		return g.fallback("disabled", hobby, experience, timeAvailable, goal)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type result struct {
		reply string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		reply, err := g.completer.Complete(ctx, systemPrompt, BuildPrompt(hobby, experience, timeAvailable, goal))
		done <- result{reply: reply, err: err}
	}()

	var r result
	select {
	case <-ctx.Done():
		g.logger.Warn("text generation did not finish in time", slog.String("hobby", hobby), slog.String("timeout", g.timeout.String()))
		return g.fallback("timeout", hobby, experience, timeAvailable, goal)
	case r = <-done:
	}

	if r.err != nil {
		reason := "error"
		if errors.Is(r.err, context.DeadlineExceeded) || errors.Is(r.err, context.Canceled) {
			reason = "timeout"
		}
		g.logger.Warn("text generation failed", slog.String("hobby", hobby), slog.String("error", r.err.Error()))
		return g.fallback(reason, hobby, experience, timeAvailable, goal)
	}

	plan, err := Parse(r.reply)
	if err != nil {
		g.logger.Warn("could not use generated text", slog.String("hobby", hobby), slog.String("error", err.Error()))
		return g.fallback("malformed", hobby, experience, timeAvailable, goal)
	}
	plan.Source = model.TextSourceAI
	fillDefaults(&plan, hobby, experience, timeAvailable)

	metrics.TextGenerations.WithLabelValues(string(model.TextSourceAI), "ok").Inc()
	return plan
}

func (g *Generator) fallback(reason, hobby string, experience model.Experience, timeAvailable, goal string) model.TextPlan {
	metrics.TextGenerations.WithLabelValues(string(model.TextSourceFallback), reason).Inc()
	return Fallback(hobby, experience, timeAvailable, goal)
}

// fillDefaults completes optional fields a remote reply left out.
func fillDefaults(plan *model.TextPlan, hobby string, experience model.Experience, timeAvailable string) {
	fb := Fallback(hobby, experience, timeAvailable, "")
	if plan.Title == "" {
		plan.Title = fb.Title
	}
	if plan.Overview == "" {
		plan.Overview = fb.Overview
	}
	for i := range plan.Days {
		d := &plan.Days[i]
		if d.EstimatedTime == "" {
			d.EstimatedTime = fb.Days[i].EstimatedTime
		}
		if d.SkillLevel == "" {
			d.SkillLevel = fb.Days[i].SkillLevel
		}
	}
}
