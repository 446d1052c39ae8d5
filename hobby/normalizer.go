// Package hobby turns free text into a canonical hobby name.
//
// Resolution is a first-match reduction over an ordered list of matchers.
// Each matcher is a pure function of the cleaned query and either produces a
// resolution or passes.
package hobby

import (
	"fmt"
	"regexp"
	"strings"

	"ewintr.nl/hobbyplan/model"
)

type query struct {
	raw   string
	clean string
}

type matcher struct {
	name  string
	match func(q query) (model.HobbyResolution, bool)
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	freeform   = regexp.MustCompile(`^[a-z][a-z -]{1,29}$`)
	separators = regexp.MustCompile(`\s*(?:,|&|\+|/|\band\b)\s*`)
)

type Normalizer struct {
	matchers []matcher
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		matchers: []matcher{
			{"stopword", matchStopWord},
			{"curated", matchCurated},
			{"contextual", matchContextual},
			{"synonym", matchSynonym},
			{"multiple", matchMultiple},
			{"typo", matchTypo},
			{"freeform", matchFreeform},
		},
	}
}

// Resolve never fails; input that cannot be resolved yields an invalid
// resolution with suggestions.
func (n *Normalizer) Resolve(raw string) model.HobbyResolution {
	q := query{raw: raw, clean: clean(raw)}
	for _, m := range n.matchers {
		if res, ok := m.match(q); ok {
			res.Raw = raw
			return res
		}
	}

	return rejected(raw, "this doesn't look like a hobby", Popular())
}

func clean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Trim(s, ".!?\"'")
	return whitespace.ReplaceAllString(s, " ")
}

func accepted(hobby string) model.HobbyResolution {
	cat, known := curated[hobby]
	return model.HobbyResolution{
		Hobby:                  hobby,
		Category:               cat,
		IsValid:                true,
		HasCuratedVideoSupport: known,
	}
}

func rejected(raw, message string, suggestions []string) model.HobbyResolution {
	return model.HobbyResolution{
		Raw:         raw,
		Message:     message,
		Suggestions: suggestions,
	}
}

func matchStopWord(q query) (model.HobbyResolution, bool) {
	if len(q.clean) < 2 || stopWords[q.clean] {
		return rejected(q.raw, "please enter a hobby you'd like to learn", Popular()), true
	}
	return model.HobbyResolution{}, false
}

func matchCurated(q query) (model.HobbyResolution, bool) {
	if Known(q.clean) {
		return accepted(q.clean), true
	}
	// several segments go to the multi-hobby check
	if len(segments(q.clean)) > 1 {
		return model.HobbyResolution{}, false
	}

	if name := mentioned(q.clean); name != "" {
		return accepted(name), true
	}

	// input is the start of a curated name: "guit" -> "guitar"
	if len(q.clean) >= 4 {
		for _, c := range categories {
			for _, name := range c.hobbies {
				if strings.HasPrefix(name, q.clean) {
					return accepted(name), true
				}
			}
		}
	}

	return model.HobbyResolution{}, false
}

// mentioned returns the curated name that appears as whole words earliest in
// s, preferring the longest name when several start at the same word.
func mentioned(s string) string {
	padded := " " + s + " "
	best, bestAt := "", len(padded)
	for _, c := range categories {
		for _, name := range c.hobbies {
			at := strings.Index(padded, " "+name+" ")
			if at < 0 {
				continue
			}
			if at < bestAt || (at == bestAt && len(name) > len(best)) {
				best, bestAt = name, at
			}
		}
	}
	return best
}

func matchSynonym(q query) (model.HobbyResolution, bool) {
	if canonical, ok := synonyms[q.clean]; ok {
		return accepted(canonical), true
	}
	return model.HobbyResolution{}, false
}

func matchMultiple(q query) (model.HobbyResolution, bool) {
	found := detect(q.clean)
	if len(found) < 2 {
		return model.HobbyResolution{}, false
	}
	msg := fmt.Sprintf("it looks like you mentioned more than one hobby (%s), pick one to focus on this week", strings.Join(found, ", "))
	return rejected(q.raw, msg, found), true
}

func matchTypo(q query) (model.HobbyResolution, bool) {
	if corrected, ok := typos[q.clean]; ok {
		return rejected(q.raw, fmt.Sprintf("did you mean %q?", corrected), []string{corrected}), true
	}
	return model.HobbyResolution{}, false
}

func matchFreeform(q query) (model.HobbyResolution, bool) {
	if !freeform.MatchString(q.clean) {
		return model.HobbyResolution{}, false
	}
	return model.HobbyResolution{
		Hobby:   q.clean,
		IsValid: true,
	}, true
}

func segments(s string) []string {
	parts := []string{}
	for _, part := range separators.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// detect lists the distinct known hobbies in s, at most one per segment, in
// order of appearance.
func detect(s string) []string {
	found := []string{}
	seen := map[string]bool{}
	for _, segment := range segments(s) {
		h := lookup(segment)
		if h == "" {
			h = mentioned(segment)
		}
		if h == "" {
			for _, word := range strings.Fields(segment) {
				if h = lookup(word); h != "" {
					break
				}
			}
		}
		if h != "" && !seen[h] {
			seen[h] = true
			found = append(found, h)
		}
	}

	return found
}

func lookup(s string) string {
	if Known(s) {
		return s
	}
	return synonyms[s]
}
