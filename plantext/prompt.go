package plantext

import (
	"fmt"
	"strings"

	"ewintr.nl/hobbyplan/model"
)

const systemPrompt = `You are a patient hobby coach. You write practical seven-day learning plans.
You answer with a single JSON object and nothing else: no introduction, no markdown.`

const responseShape = `{
  "title": "string",
  "overview": "string",
  "days": [
    {
      "day": 1,
      "title": "string",
      "mainTask": "string",
      "explanation": "string",
      "howTo": ["step", "step", "step"],
      "checklist": ["item", "item"],
      "tips": ["tip", "tip"],
      "mistakesToAvoid": ["mistake", "mistake", "mistake"],
      "estimatedTime": "string",
      "skillLevel": "string"
    }
  ]
}`

// BuildPrompt describes the plan to write and the exact shape of the reply.
func BuildPrompt(hobby string, experience model.Experience, timeAvailable, goal string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a 7-day plan for learning %s.\n", hobby)
	fmt.Fprintf(&b, "Experience level: %s.\n", experience)
	if timeAvailable != "" {
		fmt.Fprintf(&b, "Time available per day: %s.\n", timeAvailable)
	}
	if goal != "" {
		fmt.Fprintf(&b, "Goal: %s.\n", goal)
	}
	b.WriteString(`
Requirements:
- exactly 7 entries in "days", numbered 1 to 7, each building on the previous one
- day 1 covers fundamentals and setup, day 7 brings everything together and plans what comes next
- every day has one concrete main task that fits in the available time
- "howTo" holds 3 to 5 ordered steps, "mistakesToAvoid" holds at least 3 items
- keep every string plain text

Reply with JSON in exactly this shape:
`)
	b.WriteString(responseShape)
	return b.String()
}
