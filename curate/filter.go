package curate

import (
	"strings"
	"time"

	"ewintr.nl/hobbyplan/model"
)

const (
	MinMinutes = 5
	MaxMinutes = 50
	MinViews   = 5000
)

var PublishedCutoff = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// criteria is what a candidate is judged against for one day of one plan.
type criteria struct {
	hobby   string
	related []string
	topics  []string
}

func newCriteria(hobby string, day int) criteria {
	h := strings.ToLower(strings.TrimSpace(hobby))
	return criteria{
		hobby:   h,
		related: relatedTerms[h],
		topics:  topicsFor(day),
	}
}

type filterRule struct {
	name string
	pass func(c model.VideoCandidate, k criteria) bool
}

// filterRules are the metadata checks. Availability and dedup are checked
// separately since they need the network and the run state.
var filterRules = []filterRule{
	{"duration", func(c model.VideoCandidate, _ criteria) bool {
		m, ok := DurationMinutes(c.Duration)
		return ok && m >= MinMinutes && m <= MaxMinutes
	}},
	{"published", func(c model.VideoCandidate, _ criteria) bool {
		return !c.PublishedAt.Before(PublishedCutoff)
	}},
	{"not-live", func(c model.VideoCandidate, _ criteria) bool {
		return !c.LiveBroadcast
	}},
	{"embeddable", func(c model.VideoCandidate, _ criteria) bool {
		return c.Embeddable
	}},
	{"views", func(c model.VideoCandidate, _ criteria) bool {
		return c.ViewCount >= MinViews
	}},
	{"relevant-title", func(c model.VideoCandidate, k criteria) bool {
		return relevantTitle(c.Title, k)
	}},
}

// qualifies reports whether c passes every metadata check, and if not, the
// name of the first check it failed.
func qualifies(c model.VideoCandidate, k criteria) (bool, string) {
	for _, r := range filterRules {
		if !r.pass(c, k) {
			return false, r.name
		}
	}
	return true, ""
}

func relevantTitle(title string, k criteria) bool {
	t := strings.ToLower(title)
	if k.hobby == "" {
		return false
	}
	if !strings.Contains(t, k.hobby) && !containsAny(t, k.related) {
		return false
	}
	if !containsAny(t, k.topics) {
		return false
	}
	if !containsAny(t, educationalMarkers) {
		return false
	}
	return !containsAny(t, nonEducationalMarkers)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
