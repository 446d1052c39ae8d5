package curate

import (
	"fmt"
	"strings"
	"time"

	"ewintr.nl/hobbyplan/model"
)

// dayTopics is the vocabulary for the seven stages of a plan. The first two
// keywords of a stage go into the search query; any of them satisfies the
// title relevance check.
var dayTopics = [model.TotalDays][]string{
	{"basics", "fundamentals", "getting started", "introduction", "first", "start"},
	{"first steps", "basic techniques", "technique", "beginner exercises", "basics", "step by step"},
	{"practice", "exercises", "drills", "routine", "project", "technique"},
	{"improve", "tips", "common mistakes", "intermediate", "refine", "better"},
	{"creative", "ideas", "styles", "variations", "projects", "explore"},
	{"advanced", "combining", "workflow", "full session", "complete", "intermediate"},
	{"mastery", "complete guide", "next level", "masterclass", "full course", "advanced"},
}

var educationalMarkers = []string{"tutorial", "guide", "how to", "learn", "beginner", "course", "lesson"}

var nonEducationalMarkers = []string{
	"reaction", "review", "vlog", "prank", "compilation", "unboxing", "#shorts",
	"highlights", "funny", "fails", "trailer", "asmr", "live stream", "livestream",
}

var relatedTerms = map[string][]string{
	"guitar":          {"chord", "strum", "fingerpicking", "riff", "acoustic"},
	"piano":           {"keyboard", "keys", "scales"},
	"drawing":         {"sketch", "pencil", "shading", "draw"},
	"painting":        {"paint", "acrylic", "brush", "canvas"},
	"watercolor":      {"watercolour", "paint"},
	"photography":     {"camera", "photo", "lens", "exposure"},
	"cooking":         {"recipe", "kitchen", "knife", "cook", "chef"},
	"baking":          {"bake", "bread", "dough", "pastry"},
	"yoga":            {"asana", "pose", "flow", "vinyasa", "stretch"},
	"meditation":      {"mindfulness", "meditate", "breathing"},
	"knitting":        {"knit", "yarn", "stitch"},
	"crochet":         {"stitch", "yarn", "amigurumi"},
	"running":         {"run", "jogging", "5k", "marathon"},
	"weight training": {"strength", "lifting", "workout", "gym"},
	"rock climbing":   {"climbing", "bouldering", "belay"},
	"programming":     {"coding", "code", "python", "javascript"},
	"chess":           {"opening", "checkmate", "endgame"},
	"gardening":       {"garden", "plants", "seeds", "soil"},
	"calligraphy":     {"lettering", "brush pen"},
	"woodworking":     {"wood", "woodwork", "joinery"},
}

// experienceQualifiers are the query terms for each experience bucket.
var experienceQualifiers = map[model.Experience]string{
	model.ExperienceBeginner:     "beginner",
	model.ExperienceSome:         "easy",
	model.ExperienceIntermediate: "intermediate",
	model.ExperienceAdvanced:     "advanced",
}

const broadenedQualifier = "tutorial"

func qualifierFor(e model.Experience) string {
	if q, ok := experienceQualifiers[e]; ok {
		return q
	}
	return experienceQualifiers[model.ExperienceBeginner]
}

func topicsFor(day int) []string {
	return dayTopics[clampDay(day)-1]
}

func clampDay(day int) int {
	switch {
	case day < 1:
		return 1
	case day > model.TotalDays:
		return model.TotalDays
	default:
		return day
	}
}

// BuildQuery combines hobby, experience qualifier, two stage keywords, "how
// to" and the current year as a recency hint.
func BuildQuery(hobby, qualifier string, day int, now time.Time) string {
	topics := topicsFor(day)
	return fmt.Sprintf("%s %s %s %s how to %d", strings.ToLower(hobby), qualifier, topics[0], topics[1], now.Year())
}
