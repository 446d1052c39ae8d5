package curate

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"ewintr.nl/hobbyplan/model"
)

type scoreContext struct {
	hobby    string
	dayWords map[string]bool
	now      time.Time
}

func newScoreContext(hobby, dayTitle, mainTask string, now time.Time) scoreContext {
	return scoreContext{
		hobby:    strings.ToLower(strings.TrimSpace(hobby)),
		dayWords: significantWords(dayTitle + " " + mainTask),
		now:      now,
	}
}

// scoreRule adds weight for every count the rule finds in a candidate.
// Boolean rules count 0 or 1.
type scoreRule struct {
	name   string
	weight int
	count  func(c model.VideoCandidate, sc scoreContext) int
}

var scoreRules = []scoreRule{
	{"hobby-in-title", 10, func(c model.VideoCandidate, sc scoreContext) int {
		return boolCount(sc.hobby != "" && titleHas(c, sc.hobby))
	}},
	{"tutorial", 8, func(c model.VideoCandidate, _ scoreContext) int {
		return boolCount(titleHas(c, "tutorial"))
	}},
	{"beginner", 6, func(c model.VideoCandidate, _ scoreContext) int {
		return boolCount(titleHas(c, "beginner"))
	}},
	{"learn", 6, func(c model.VideoCandidate, _ scoreContext) int {
		return boolCount(titleHas(c, "learn"))
	}},
	{"how-to", 6, func(c model.VideoCandidate, _ scoreContext) int {
		return boolCount(titleHas(c, "how to"))
	}},
	{"day-words", 5, func(c model.VideoCandidate, sc scoreContext) int {
		n := 0
		for w := range significantWords(c.Title) {
			if sc.dayWords[w] {
				n++
			}
		}
		return n
	}},
	{"duration-ideal", 5, func(c model.VideoCandidate, _ scoreContext) int {
		m, ok := DurationMinutes(c.Duration)
		return boolCount(ok && m >= 10 && m <= 25)
	}},
	{"duration-good", 3, func(c model.VideoCandidate, _ scoreContext) int {
		m, ok := DurationMinutes(c.Duration)
		return boolCount(ok && m >= 5 && m <= 35 && (m < 10 || m > 25))
	}},
	{"recent", 5, func(c model.VideoCandidate, sc scoreContext) int {
		age := ageYears(c, sc.now)
		return boolCount(age >= 0 && age <= 1)
	}},
	{"fairly-recent", 3, func(c model.VideoCandidate, sc scoreContext) int {
		return boolCount(ageYears(c, sc.now) == 2)
	}},
	{"older", 1, func(c model.VideoCandidate, sc scoreContext) int {
		age := ageYears(c, sc.now)
		return boolCount(age >= 3 && age <= 4)
	}},
}

func score(c model.VideoCandidate, sc scoreContext) int {
	total := 0
	for _, r := range scoreRules {
		total += r.weight * r.count(c, sc)
	}
	return total
}

// rank orders candidates by score, highest first. Equal scores keep their
// original order.
func rank(cands []model.VideoCandidate, sc scoreContext) []model.VideoCandidate {
	type scored struct {
		cand  model.VideoCandidate
		score int
	}
	list := make([]scored, len(cands))
	for i, c := range cands {
		list[i] = scored{cand: c, score: score(c, sc)}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})

	out := make([]model.VideoCandidate, len(list))
	for i, s := range list {
		out[i] = s.cand
	}
	return out
}

func titleHas(c model.VideoCandidate, term string) bool {
	return strings.Contains(strings.ToLower(c.Title), term)
}

func ageYears(c model.VideoCandidate, now time.Time) int {
	if c.PublishedAt.IsZero() {
		return -1
	}
	return now.Year() - c.PublishedAt.Year()
}

func significantWords(s string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if len([]rune(w)) > 3 {
			set[w] = true
		}
	}
	return set
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}
