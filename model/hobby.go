package model

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryCreative   Category = "creative_arts"
	CategoryOutdoor    Category = "outdoor_nature"
	CategoryFitness    Category = "fitness"
	CategoryGames      Category = "games"
	CategoryTechnology Category = "technology"
	CategoryCulinary   Category = "culinary"
	CategoryWellness   Category = "wellness"
)

// HobbyResolution is the outcome of normalizing raw user input. Hobby is only
// set when IsValid is true.
type HobbyResolution struct {
	Raw                    string   `json:"raw"`
	Hobby                  string   `json:"hobby"`
	Category               Category `json:"category,omitempty"`
	IsValid                bool     `json:"isValid"`
	HasCuratedVideoSupport bool     `json:"hasCuratedVideoSupport"`
	Suggestions            []string `json:"suggestions,omitempty"`
	Message                string   `json:"message,omitempty"`
}

type InvalidHobbyError struct {
	Resolution HobbyResolution
}

func (e *InvalidHobbyError) Error() string {
	msg := e.Resolution.Message
	if msg == "" {
		msg = "not a recognizable hobby"
	}
	if len(e.Resolution.Suggestions) == 0 {
		return fmt.Sprintf("invalid hobby %q: %s", e.Resolution.Raw, msg)
	}
	return fmt.Sprintf("invalid hobby %q: %s (try: %s)", e.Resolution.Raw, msg, strings.Join(e.Resolution.Suggestions, ", "))
}
