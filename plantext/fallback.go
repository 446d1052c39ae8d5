package plantext

import (
	"fmt"
	"strings"

	"ewintr.nl/hobbyplan/hobby"
	"ewintr.nl/hobbyplan/model"
)

const defaultTimeAvailable = "30-60 minutes"

type dayTemplate struct {
	title       string
	mainTask    string
	explanation string
	howTo       []string
	checklist   []string
	tips        []string
	mistakes    []string
}

// Fallback builds the plan without any remote call. It is pure and succeeds
// for any hobby.
func Fallback(name string, experience model.Experience, timeAvailable, goal string) model.TextPlan {
	display := hobby.DisplayName(strings.TrimSpace(name))
	if display == "" {
		display = "Your New Hobby"
	}

	overview := fmt.Sprintf("A seven day introduction to %s: start with the fundamentals, build core technique, then put it all together.", strings.ToLower(display))
	if goal != "" {
		overview = fmt.Sprintf("%s Focus: %s.", overview, strings.TrimSuffix(goal, "."))
	}

	plan := model.TextPlan{
		Title:    fmt.Sprintf("Learn %s in 7 Days", display),
		Overview: overview,
		Days:     make([]model.DayText, 0, model.TotalDays),
		Source:   model.TextSourceFallback,
	}
	for day := 1; day <= model.TotalDays; day++ {
		plan.Days = append(plan.Days, FallbackDay(name, experience, timeAvailable, day))
	}

	return plan
}

// FallbackDay returns the templated text for a single day. Days outside 1..7
// are clamped.
func FallbackDay(name string, experience model.Experience, timeAvailable string, day int) model.DayText {
	switch {
	case day < 1:
		day = 1
	case day > model.TotalDays:
		day = model.TotalDays
	}
	if timeAvailable == "" {
		timeAvailable = defaultTimeAvailable
	}

	key := strings.ToLower(strings.TrimSpace(name))
	tmpl := genericStages[day-1]
	if table, ok := hobbyTables[key]; ok {
		tmpl = table[day-1]
	}

	subject := key
	if subject == "" {
		subject = "your new hobby"
	}
	r := strings.NewReplacer("{hobby}", subject, "{Hobby}", hobby.DisplayName(subject))
	return model.DayText{
		Day:             day,
		Title:           r.Replace(tmpl.title),
		MainTask:        r.Replace(tmpl.mainTask),
		Explanation:     r.Replace(tmpl.explanation),
		HowTo:           replaceAll(r, tmpl.howTo),
		Checklist:       replaceAll(r, tmpl.checklist),
		Tips:            replaceAll(r, tmpl.tips),
		MistakesToAvoid: replaceAll(r, tmpl.mistakes),
		EstimatedTime:   timeAvailable,
		SkillLevel:      experience.Difficulty(),
	}
}

func replaceAll(r *strings.Replacer, in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = r.Replace(s)
	}
	return out
}
