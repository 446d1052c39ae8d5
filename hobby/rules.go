package hobby

import (
	"regexp"
	"strings"

	"ewintr.nl/hobbyplan/model"
)

type outcome int

const (
	pass outcome = iota
	resolved
	unresolved
)

// contextRule maps a phrase pattern onto a hobby. A rule returning unresolved
// stops the contextual pass without a match.
type contextRule func(s string) (string, outcome)

var contextRules = []contextRule{
	scriptureRule,
	writingRule,
	growingRule,
	genericReadingRule,
	learnSubjectRule,
}

var (
	scripture      = regexp.MustCompile(`\b(bible|quran|koran|torah)\b`)
	studyVerb      = regexp.MustCompile(`\b(read|reading|study|studying)\b`)
	writingPattern = regexp.MustCompile(`\b(write|writing)\b.*\b(novels?|books?|stories|story|fiction)\b`)
	growPattern    = regexp.MustCompile(`\b(grow|growing)\b.*\b(vegetables|veggies|herbs|plants|flowers|tomatoes)\b`)
	genericReading = regexp.MustCompile(`^(i like )?(reading|read|books|reading books|read books)$`)
	learnPattern   = regexp.MustCompile(`^(?:i want to |i'd like to )?(?:learn|learning|study|studying)\s+(?:how\s+)?(?:to\s+)?(.+)$`)
)

func matchContextual(q query) (model.HobbyResolution, bool) {
	for _, rule := range contextRules {
		hobby, out := rule(q.clean)
		switch out {
		case resolved:
			return accepted(hobby), true
		case unresolved:
			return model.HobbyResolution{}, false
		}
	}
	return model.HobbyResolution{}, false
}

func scriptureRule(s string) (string, outcome) {
	text := scripture.FindString(s)
	if text == "" || !studyVerb.MatchString(s) {
		return "", pass
	}
	if text == "koran" {
		text = "quran"
	}
	return text + " study", resolved
}

func writingRule(s string) (string, outcome) {
	if writingPattern.MatchString(s) {
		return "creative writing", resolved
	}
	return "", pass
}

func growingRule(s string) (string, outcome) {
	if growPattern.MatchString(s) {
		return "gardening", resolved
	}
	return "", pass
}

// genericReadingRule keeps plain "reading" from being guessed into one of the
// specific reading hobbies.
func genericReadingRule(s string) (string, outcome) {
	if genericReading.MatchString(s) {
		return "", unresolved
	}
	return "", pass
}

func learnSubjectRule(s string) (string, outcome) {
	m := learnPattern.FindStringSubmatch(s)
	if m == nil {
		return "", pass
	}
	subject := strings.TrimSpace(m[1])
	for _, article := range []string{"the ", "a ", "an ", "about "} {
		subject = strings.TrimPrefix(subject, article)
	}
	if separators.MatchString(subject) || stopWords[subject] || !freeform.MatchString(subject) {
		return "", pass
	}
	if h := lookup(subject); h != "" {
		return h, resolved
	}
	return subject, resolved
}
