package plantext

import (
	"errors"
	"fmt"
	"strings"

	"ewintr.nl/hobbyplan/model"
	"github.com/goccy/go-json"
)

var ErrMalformed = errors.New("malformed text plan")

// Parse decodes a remote reply into a seven-day plan. The reply may be
// wrapped in a code fence or surrounded by prose.
func Parse(reply string) (model.TextPlan, error) {
	body := extractJSON(reply)
	if body == "" {
		return model.TextPlan{}, fmt.Errorf("%w: no json object in reply", ErrMalformed)
	}

	var plan model.TextPlan
	if err := json.Unmarshal([]byte(body), &plan); err != nil {
		return model.TextPlan{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(plan.Days) != model.TotalDays {
		return model.TextPlan{}, fmt.Errorf("%w: expected %d days, got %d", ErrMalformed, model.TotalDays, len(plan.Days))
	}
	for i := range plan.Days {
		d := &plan.Days[i]
		if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.MainTask) == "" {
			return model.TextPlan{}, fmt.Errorf("%w: day %d is missing a title or main task", ErrMalformed, i+1)
		}
		d.Day = i + 1
	}

	return plan, nil
}

func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
	}

	start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
