// Package assemble merges the text plan, the selected videos and affiliate
// products into the stored plan record.
package assemble

import (
	"fmt"
	"strings"

	"ewintr.nl/hobbyplan/curate"
	"ewintr.nl/hobbyplan/hobby"
	"ewintr.nl/hobbyplan/model"
	"ewintr.nl/hobbyplan/plantext"
)

var defaultMistakes = []string{
	"Trying to learn too much at once instead of focusing on one skill",
	"Skipping the basics to get to the fun parts faster",
	"Practicing inconsistently instead of a little every day",
}

type Assembler struct {
	catalog *ProductCatalog
}

func NewAssembler(catalog *ProductCatalog) *Assembler {
	if catalog == nil {
		catalog = NewProductCatalog("")
	}
	return &Assembler{catalog: catalog}
}

// Assemble always returns seven days numbered 1..7. Missing text days are
// filled from the fallback templates and missing videos from the generic
// pool. Selections are indexed by day, so sels[0] is day 1.
func (a *Assembler) Assemble(res model.HobbyResolution, req model.PlanRequest, text model.TextPlan, sels []curate.Selection) model.PlanRecord {
	experience := model.ParseExperience(req.Experience)
	difficulty := experience.Difficulty()

	texts := indexTexts(text.Days)
	videos := indexVideos(res.Hobby, sels)

	record := model.PlanRecord{
		Hobby:      res.Hobby,
		Title:      text.Title,
		Overview:   text.Overview,
		Difficulty: difficulty,
		TotalDays:  model.TotalDays,
		Days:       make([]model.DayPlan, 0, model.TotalDays),
		TextSource: text.Source,
	}
	if record.Title == "" {
		record.Title = fmt.Sprintf("Learn %s in 7 Days", hobby.DisplayName(res.Hobby))
	}
	if record.TextSource == "" {
		record.TextSource = model.TextSourceFallback
	}

	for day := 1; day <= model.TotalDays; day++ {
		dt, ok := texts[day]
		if !ok {
			dt = plantext.FallbackDay(res.Hobby, experience, req.TimeAvailable, day)
		}
		video := videos[day-1]

		dp := model.DayPlan{
			Day:               day,
			Title:             dt.Title,
			MainTask:          dt.MainTask,
			Explanation:       dt.Explanation,
			HowTo:             nonNil(dt.HowTo),
			Checklist:         nonNil(dt.Checklist),
			Tips:              nonNil(dt.Tips),
			MistakesToAvoid:   ConsolidateMistakes(dt),
			YoutubeVideoID:    video.VideoID,
			VideoID:           video.VideoID,
			VideoTitle:        video.Title,
			AffiliateProducts: a.catalog.Products(res.Hobby, res.Category, day),
			EstimatedTime:     dt.EstimatedTime,
			SkillLevel:        dt.SkillLevel,
		}
		if dp.EstimatedTime == "" {
			dp.EstimatedTime = req.TimeAvailable
		}
		if dp.SkillLevel == "" {
			dp.SkillLevel = difficulty
		}
		record.Days = append(record.Days, dp)
	}

	return record
}

// ConsolidateMistakes picks the first non-empty of the three mistakes lists,
// in order of the current field name to the oldest. Without any it returns
// a generic list.
func ConsolidateMistakes(dt model.DayText) []string {
	for _, list := range [][]string{dt.MistakesToAvoid, dt.CommonMistakes, dt.AvoidMistakes} {
		if cleaned := compact(list); len(cleaned) > 0 {
			return cleaned
		}
	}

	out := make([]string, len(defaultMistakes))
	copy(out, defaultMistakes)
	return out
}

func indexTexts(days []model.DayText) map[int]model.DayText {
	texts := make(map[int]model.DayText, model.TotalDays)
	for _, d := range days {
		if d.Day < 1 || d.Day > model.TotalDays || strings.TrimSpace(d.Title) == "" {
			continue
		}
		if _, taken := texts[d.Day]; taken {
			continue
		}
		texts[d.Day] = d
	}
	return texts
}

func indexVideos(name string, sels []curate.Selection) []curate.Selection {
	videos := make([]curate.Selection, model.TotalDays)
	reg := curate.NewRegistry()
	for i := 0; i < model.TotalDays && i < len(sels); i++ {
		if sels[i].VideoID == "" {
			continue
		}
		videos[i] = sels[i]
		reg.Claim(sels[i].VideoID)
	}
	for i := range videos {
		if videos[i].VideoID != "" {
			continue
		}
		v := curate.GenericVideo(name, i+1, reg)
		videos[i] = curate.Selection{VideoID: v.ID, Title: v.Title, Tier: model.TierGeneric}
	}
	return videos
}

func compact(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
