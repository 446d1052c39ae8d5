package assemble

import (
	"fmt"
	"net/url"
	"testing"

	"ewintr.nl/hobbyplan/curate"
	"ewintr.nl/hobbyplan/model"
	"ewintr.nl/hobbyplan/plantext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guitarResolution() model.HobbyResolution {
	return model.HobbyResolution{
		Raw:                    "Guitar",
		Hobby:                  "guitar",
		Category:               model.CategoryCreative,
		IsValid:                true,
		HasCuratedVideoSupport: true,
	}
}

func weekSelections() []curate.Selection {
	sels := make([]curate.Selection, model.TotalDays)
	for i := range sels {
		sels[i] = curate.Selection{
			VideoID: model.YoutubeVideoID(fmt.Sprintf("video%06d", i+1)),
			Title:   fmt.Sprintf("Video %d", i+1),
			Tier:    model.TierStrict,
		}
	}
	return sels
}

func TestAssemble(t *testing.T) {
	req := model.PlanRequest{Hobby: "Guitar", Experience: "some", TimeAvailable: "15-30 minutes"}
	text := plantext.Fallback("guitar", model.ExperienceSome, req.TimeAvailable, "")

	record := NewAssembler(NewProductCatalog("hobbyplan-20")).Assemble(guitarResolution(), req, text, weekSelections())

	assert.Equal(t, "guitar", record.Hobby)
	assert.Equal(t, "intermediate", record.Difficulty)
	assert.Equal(t, model.TotalDays, record.TotalDays)
	assert.Equal(t, model.TextSourceFallback, record.TextSource)
	require.Len(t, record.Days, model.TotalDays)
	for i, d := range record.Days {
		assert.Equal(t, i+1, d.Day)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.YoutubeVideoID)
		assert.Equal(t, d.YoutubeVideoID, d.VideoID)
		assert.NotEmpty(t, d.MistakesToAvoid)
		require.Len(t, d.AffiliateProducts, 1)
		assert.Contains(t, d.AffiliateProducts[0].Link, "tag=hobbyplan-20")
	}
	assert.Equal(t, model.YoutubeVideoID("video000003"), record.Days[2].VideoID)
}

func TestAssembleFillsGaps(t *testing.T) {
	req := model.PlanRequest{Hobby: "chess", Experience: "advanced"}
	res := model.HobbyResolution{Hobby: "chess", Category: model.CategoryGames, IsValid: true}
	text := model.TextPlan{
		Title:  "Chess Week",
		Source: model.TextSourceAI,
		Days: []model.DayText{
			{Day: 2, Title: "Openings", MainTask: "Learn two openings"},
			{Day: 2, Title: "Duplicate", MainTask: "Ignored"},
			{Day: 9, Title: "Out of range", MainTask: "Ignored"},
		},
	}
	sels := weekSelections()[:3]
	sels[1].VideoID = ""

	record := NewAssembler(nil).Assemble(res, req, text, sels)

	require.Len(t, record.Days, model.TotalDays)
	assert.Equal(t, "Chess Week", record.Title)
	assert.Equal(t, model.TextSourceAI, record.TextSource)
	assert.Equal(t, "advanced", record.Difficulty)
	assert.Equal(t, "Openings", record.Days[1].Title)
	assert.NotEqual(t, "Duplicate", record.Days[1].Title)

	seen := make(map[model.YoutubeVideoID]bool)
	for _, d := range record.Days {
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.YoutubeVideoID)
		assert.False(t, seen[d.YoutubeVideoID], "day %d repeats %s", d.Day, d.YoutubeVideoID)
		seen[d.YoutubeVideoID] = true
		assert.Equal(t, "advanced", d.SkillLevel)
	}
}

func TestConsolidateMistakes(t *testing.T) {
	tests := []struct {
		name string
		day  model.DayText
		want []string
	}{
		{
			name: "canonical first",
			day:  model.DayText{MistakesToAvoid: []string{"a"}, CommonMistakes: []string{"b"}, AvoidMistakes: []string{"c"}},
			want: []string{"a"},
		},
		{
			name: "common mistakes",
			day:  model.DayText{CommonMistakes: []string{"b", " "}, AvoidMistakes: []string{"c"}},
			want: []string{"b"},
		},
		{
			name: "avoid mistakes",
			day:  model.DayText{MistakesToAvoid: []string{""}, AvoidMistakes: []string{"c"}},
			want: []string{"c"},
		},
		{
			name: "default",
			day:  model.DayText{},
			want: defaultMistakes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsolidateMistakes(tt.day))
		})
	}
	assert.Len(t, defaultMistakes, 3)
}

func TestProducts(t *testing.T) {
	pc := NewProductCatalog("tag-21")

	tests := []struct {
		name     string
		hobby    string
		category model.Category
		day      int
		want     string
	}{
		{name: "hobby entry", hobby: "guitar", category: model.CategoryCreative, day: 1, want: "Beginner Acoustic Guitar Starter Kit"},
		{name: "hobby entry wraps", hobby: "guitar", category: model.CategoryCreative, day: 5, want: "Beginner Acoustic Guitar Starter Kit"},
		{name: "category template", hobby: "chess", category: model.CategoryGames, day: 1, want: "Chess Starter Set"},
		{name: "generic", hobby: "urban sketching", day: 1, want: "Urban Sketching for Beginners Book"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pc.Products(tt.hobby, tt.category, tt.day)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Title)
			assert.NotEmpty(t, got[0].Price)

			u, err := url.Parse(got[0].Link)
			require.NoError(t, err)
			assert.Equal(t, "www.amazon.com", u.Host)
			assert.Equal(t, tt.want, u.Query().Get("k"))
			assert.Equal(t, "tag-21", u.Query().Get("tag"))
		})
	}
}

func TestProductsWithoutTag(t *testing.T) {
	got := NewProductCatalog(" ").Products("yoga", model.CategoryWellness, 2)

	require.Len(t, got, 1)
	assert.NotContains(t, got[0].Link, "tag=")
}
