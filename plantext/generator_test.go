package plantext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"ewintr.nl/hobbyplan/model"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

// blockingCompleter waits until its context is done.
type blockingCompleter struct{}

func (blockingCompleter) Complete(ctx context.Context, _, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// stuckCompleter ignores its context entirely.
type stuckCompleter struct {
	release chan struct{}
}

func (s stuckCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	<-s.release
	return "", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func remoteReply(t *testing.T, days int) string {
	t.Helper()
	plan := model.TextPlan{Title: "Guitar Week", Overview: "From zero to first song"}
	for i := 1; i <= days; i++ {
		plan.Days = append(plan.Days, model.DayText{
			Day:            i,
			Title:          fmt.Sprintf("Remote day %d", i),
			MainTask:       fmt.Sprintf("Task %d", i),
			CommonMistakes: []string{"rushing"},
		})
	}
	body, err := json.Marshal(plan)
	require.NoError(t, err)
	return string(body)
}

func TestGenerate_UsesRemotePlan(t *testing.T) {
	reply := remoteReply(t, 7)

	for _, tc := range []struct {
		name  string
		reply string
	}{
		{"plain", reply},
		{"fenced", "```json\n" + reply + "\n```"},
		{"fenced without language", "```\n" + reply + "```"},
		{"with prose", "Here is your plan:\n" + reply + "\nEnjoy!"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(&stubCompleter{reply: tc.reply}, time.Second, testLogger())

			plan := g.Generate(context.Background(), "guitar", model.ExperienceBeginner, "30-60 minutes", "learn basics")
			assert.Equal(t, model.TextSourceAI, plan.Source)
			require.Len(t, plan.Days, 7)
			assert.Equal(t, "Remote day 1", plan.Days[0].Title)
			assert.Equal(t, []string{"rushing"}, plan.Days[0].CommonMistakes)
			assert.Equal(t, "30-60 minutes", plan.Days[0].EstimatedTime)
			assert.Equal(t, "beginner", plan.Days[0].SkillLevel)
		})
	}
}

func TestGenerate_FallsBack(t *testing.T) {
	for _, tc := range []struct {
		name      string
		completer Completer
	}{
		{"no completer", nil},
		{"error", &stubCompleter{err: errors.New("quota exceeded")}},
		{"not json", &stubCompleter{reply: "I cannot help with that"}},
		{"broken json", &stubCompleter{reply: `{"days": [`}},
		{"six days", &stubCompleter{reply: remoteReply(t, 6)}},
		{"eight days", &stubCompleter{reply: remoteReply(t, 8)}},
		{"missing title", &stubCompleter{reply: strings.Replace(remoteReply(t, 7), `"Remote day 3"`, `""`, 1)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var c Completer
			if tc.completer != nil {
				c = tc.completer
			}
			g := NewGenerator(c, time.Second, testLogger())

			plan := g.Generate(context.Background(), "guitar", model.ExperienceBeginner, "", "")
			assert.Equal(t, model.TextSourceFallback, plan.Source)
			assert.Equal(t, Fallback("guitar", model.ExperienceBeginner, "", ""), plan)
		})
	}
}

func TestGenerate_TimeoutFallsBackWithinDeadline(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	for _, tc := range []struct {
		name      string
		completer Completer
	}{
		{"respects context", blockingCompleter{}},
		{"ignores context", stuckCompleter{release: release}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(tc.completer, 50*time.Millisecond, testLogger())

			start := time.Now()
			plan := g.Generate(context.Background(), "guitar", model.ExperienceBeginner, "30-60 minutes", "learn basics")
			assert.Less(t, time.Since(start), time.Second)
			assert.Equal(t, model.TextSourceFallback, plan.Source)
			assert.Len(t, plan.Days, 7)
		})
	}
}

func TestGenerate_CancelledCaller(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGenerator(blockingCompleter{}, time.Minute, testLogger())

	plan := g.Generate(ctx, "chess", model.ExperienceAdvanced, "", "")
	assert.Equal(t, model.TextSourceFallback, plan.Source)
	assert.Len(t, plan.Days, 7)
}

func TestFallback_Total(t *testing.T) {
	for _, hobby := range []string{"guitar", "cooking", "drawing", "lock picking", "x", ""} {
		t.Run(hobby, func(t *testing.T) {
			plan := Fallback(hobby, model.ExperienceSome, "15-30 minutes", "")
			require.Len(t, plan.Days, 7)
			assert.NotEmpty(t, plan.Title)
			for i, d := range plan.Days {
				assert.Equal(t, i+1, d.Day)
				assert.NotEmpty(t, d.Title)
				assert.NotEmpty(t, d.MainTask)
				assert.NotEmpty(t, d.HowTo)
				assert.NotEmpty(t, d.MistakesToAvoid)
				assert.Equal(t, "15-30 minutes", d.EstimatedTime)
				assert.Equal(t, "intermediate", d.SkillLevel)
				assert.NotContains(t, d.Title, "{")
			}
		})
	}
}

func TestFallback_Deterministic(t *testing.T) {
	assert.Equal(t, Fallback("pottery", model.ExperienceBeginner, "", "relax"), Fallback("pottery", model.ExperienceBeginner, "", "relax"))
}

func TestFallback_GuitarStartsWithFundamentals(t *testing.T) {
	plan := Fallback("guitar", model.ExperienceBeginner, "30-60 minutes", "learn basics")
	assert.Contains(t, plan.Days[0].Title, "Fundamentals")
	assert.Contains(t, plan.Days[0].Title, "Setup")
}

func TestFallback_GenericStagesNameHobby(t *testing.T) {
	plan := Fallback("rock climbing", model.ExperienceBeginner, "", "")
	assert.Equal(t, "Rock Climbing Fundamentals and Setup", plan.Days[0].Title)
	assert.Equal(t, "Rock Climbing Mastery Path and Next Steps", plan.Days[6].Title)
	assert.Contains(t, plan.Days[1].MainTask, "rock climbing")
}

func TestFallbackDay_Clamps(t *testing.T) {
	assert.Equal(t, 1, FallbackDay("yoga", model.ExperienceBeginner, "", 0).Day)
	assert.Equal(t, 7, FallbackDay("yoga", model.ExperienceBeginner, "", 9).Day)
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("guitar", model.ExperienceBeginner, "30-60 minutes", "learn basics")
	for _, want := range []string{"guitar", "beginner", "30-60 minutes", "learn basics", `"mistakesToAvoid"`, "exactly 7"} {
		assert.Contains(t, p, want)
	}
}
