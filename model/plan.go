package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const TotalDays = 7

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceSome         Experience = "some"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// ParseExperience maps free input onto the known buckets. Anything unknown is
// treated as beginner.
func ParseExperience(s string) Experience {
	switch e := Experience(strings.ToLower(strings.TrimSpace(s))); e {
	case ExperienceSome, ExperienceIntermediate, ExperienceAdvanced:
		return e
	default:
		return ExperienceBeginner
	}
}

// Difficulty is the display label for an experience bucket.
func (e Experience) Difficulty() string {
	switch e {
	case ExperienceSome, ExperienceIntermediate:
		return "intermediate"
	case ExperienceAdvanced:
		return "advanced"
	default:
		return "beginner"
	}
}

type PlanRequest struct {
	Hobby         string `json:"hobby" validate:"max=200"`
	Experience    string `json:"experience" validate:"max=50"`
	TimeAvailable string `json:"timeAvailable" validate:"max=100"`
	Goal          string `json:"goal" validate:"max=200"`
}

// DayText is one day of instructional content as produced by the text
// generator. The three mistakes fields are names used by different plan
// schema versions for the same list.
type DayText struct {
	Day             int      `json:"day"`
	Title           string   `json:"title"`
	MainTask        string   `json:"mainTask"`
	Explanation     string   `json:"explanation"`
	HowTo           []string `json:"howTo"`
	Checklist       []string `json:"checklist"`
	Tips            []string `json:"tips"`
	CommonMistakes  []string `json:"commonMistakes,omitempty"`
	MistakesToAvoid []string `json:"mistakesToAvoid,omitempty"`
	AvoidMistakes   []string `json:"avoidMistakes,omitempty"`
	EstimatedTime   string   `json:"estimatedTime"`
	SkillLevel      string   `json:"skillLevel"`
}

type TextSource string

const (
	TextSourceAI       TextSource = "ai"
	TextSourceFallback TextSource = "fallback"
)

type TextPlan struct {
	Title    string     `json:"title"`
	Overview string     `json:"overview"`
	Days     []DayText  `json:"days"`
	Source   TextSource `json:"-"`
}

type AffiliateProduct struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Price string `json:"price"`
}

type DayPlan struct {
	Day               int                `json:"day"`
	Title             string             `json:"title"`
	MainTask          string             `json:"mainTask"`
	Explanation       string             `json:"explanation"`
	HowTo             []string           `json:"howTo"`
	Checklist         []string           `json:"checklist"`
	Tips              []string           `json:"tips"`
	MistakesToAvoid   []string           `json:"mistakesToAvoid"`
	YoutubeVideoID    YoutubeVideoID     `json:"youtubeVideoId"`
	VideoID           YoutubeVideoID     `json:"videoId"`
	VideoTitle        string             `json:"videoTitle"`
	AffiliateProducts []AffiliateProduct `json:"affiliateProducts"`
	EstimatedTime     string             `json:"estimatedTime"`
	SkillLevel        string             `json:"skillLevel"`
}

type PlanRecord struct {
	ID         uuid.UUID  `json:"id"`
	Hobby      string     `json:"hobby"`
	Title      string     `json:"title"`
	Overview   string     `json:"overview"`
	Difficulty string     `json:"difficulty"`
	TotalDays  int        `json:"totalDays"`
	Days       []DayPlan  `json:"days"`
	TextSource TextSource `json:"textSource"`
	CreatedAt  time.Time  `json:"createdAt"`
}
