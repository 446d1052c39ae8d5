package curate

import (
	"testing"
	"time"

	"ewintr.nl/hobbyplan/model"
	"github.com/stretchr/testify/assert"
)

func goodCandidate(id string) model.VideoCandidate {
	return model.VideoCandidate{
		ID:           model.YoutubeVideoID(id),
		Title:        "Guitar Basics Tutorial for Beginners",
		Duration:     "PT12M30S",
		PublishedAt:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		ChannelTitle: "Lessons",
		ViewCount:    120000,
		Embeddable:   true,
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "minutes and seconds", input: "PT12M30S", want: 12, wantOK: true},
		{name: "seconds truncated", input: "PT4M59S", want: 4, wantOK: true},
		{name: "hours", input: "PT1H2M3S", want: 62, wantOK: true},
		{name: "days", input: "P1DT1M", want: 1441, wantOK: true},
		{name: "seconds only", input: "PT30S", want: 0, wantOK: true},
		{name: "lowercase", input: "pt7m", want: 7, wantOK: true},
		{name: "clock", input: "4:59", want: 4, wantOK: true},
		{name: "clock with hours", input: "1:02:03", want: 62, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "bare designator", input: "PT", wantOK: false},
		{name: "fractional seconds", input: "PT50M59.9S", want: 50, wantOK: true},
		{name: "negative", input: "-PT5M", wantOK: false},
		{name: "garbage", input: "twelve minutes", wantOK: false},
		{name: "bad clock", input: "1:xx", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DurationMinutes(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestQualifies(t *testing.T) {
	crit := newCriteria("guitar", 1)

	tests := []struct {
		name     string
		mutate   func(c *model.VideoCandidate)
		wantOK   bool
		wantRule string
	}{
		{name: "good", mutate: func(c *model.VideoCandidate) {}, wantOK: true},
		{name: "4 minutes", mutate: func(c *model.VideoCandidate) { c.Duration = "PT4M59S" }, wantRule: "duration"},
		{name: "5 minutes", mutate: func(c *model.VideoCandidate) { c.Duration = "PT5M" }, wantOK: true},
		{name: "50 minutes", mutate: func(c *model.VideoCandidate) { c.Duration = "PT50M59S" }, wantOK: true},
		{name: "51 minutes", mutate: func(c *model.VideoCandidate) { c.Duration = "PT51M" }, wantRule: "duration"},
		{name: "unparseable duration", mutate: func(c *model.VideoCandidate) { c.Duration = "" }, wantRule: "duration"},
		{name: "before cutoff", mutate: func(c *model.VideoCandidate) {
			c.PublishedAt = time.Date(2019, time.December, 31, 23, 59, 0, 0, time.UTC)
		}, wantRule: "published"},
		{name: "on cutoff", mutate: func(c *model.VideoCandidate) { c.PublishedAt = PublishedCutoff }, wantOK: true},
		{name: "live", mutate: func(c *model.VideoCandidate) { c.LiveBroadcast = true }, wantRule: "not-live"},
		{name: "not embeddable", mutate: func(c *model.VideoCandidate) { c.Embeddable = false }, wantRule: "embeddable"},
		{name: "4999 views", mutate: func(c *model.VideoCandidate) { c.ViewCount = 4999 }, wantRule: "views"},
		{name: "5000 views", mutate: func(c *model.VideoCandidate) { c.ViewCount = 5000 }, wantOK: true},
		{name: "other hobby", mutate: func(c *model.VideoCandidate) { c.Title = "Piano Basics Tutorial" }, wantRule: "relevant-title"},
		{name: "related term", mutate: func(c *model.VideoCandidate) { c.Title = "Chord Basics Tutorial" }, wantOK: true},
		{name: "no day topic", mutate: func(c *model.VideoCandidate) { c.Title = "Guitar Tutorial" }, wantRule: "relevant-title"},
		{name: "no educational marker", mutate: func(c *model.VideoCandidate) { c.Title = "Guitar Basics" }, wantRule: "relevant-title"},
		{name: "denylisted marker", mutate: func(c *model.VideoCandidate) { c.Title = "Guitar Basics Tutorial Reaction" }, wantRule: "relevant-title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := goodCandidate("abc")
			tt.mutate(&c)
			ok, rule := qualifies(c, crit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestBuildQuery(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "guitar beginner basics fundamentals how to 2025", BuildQuery("Guitar", "beginner", 1, now))
	assert.Equal(t, "guitar tutorial mastery complete guide how to 2025", BuildQuery("guitar", broadenedQualifier, 7, now))
	assert.Equal(t, BuildQuery("guitar", "easy", 7, now), BuildQuery("guitar", "easy", 12, now))
}

func TestQualifierFor(t *testing.T) {
	assert.Equal(t, "beginner", qualifierFor(model.ExperienceBeginner))
	assert.Equal(t, "easy", qualifierFor(model.ExperienceSome))
	assert.Equal(t, "advanced", qualifierFor(model.ExperienceAdvanced))
	assert.Equal(t, "beginner", qualifierFor(model.Experience("expert")))
}
