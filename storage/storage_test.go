package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ewintr.nl/hobbyplan/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/fault"
)

func TestCompareMigrations(t *testing.T) {
	tests := []struct {
		name     string
		wanted   []string
		existing []string
		want     []string
		wantErr  bool
	}{
		{name: "fresh database", wanted: []string{"a", "b"}, existing: []string{}, want: []string{"a", "b"}},
		{name: "up to date", wanted: []string{"a", "b"}, existing: []string{"a", "b"}, want: []string{}},
		{name: "one new", wanted: []string{"a", "b", "c"}, existing: []string{"a", "b"}, want: []string{"c"}},
		{name: "database ahead", wanted: []string{"a"}, existing: []string{"a", "b"}, wantErr: true},
		{name: "changed history", wanted: []string{"a", "x", "c"}, existing: []string{"a", "b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compareMigrations(tt.wanted, tt.existing)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	plan := &model.PlanRecord{
		ID:        uuid.New(),
		Hobby:     "guitar",
		Title:     "Learn Guitar in 7 Days",
		TotalDays: model.TotalDays,
		Days: []model.DayPlan{
			{Day: 1, Title: "Setup", HowTo: []string{"tune"}, YoutubeVideoID: "abc", VideoID: "abc"},
		},
		CreatedAt: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
	}

	_, err := repo.FindByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Save(ctx, plan))
	plan.Days[0].HowTo[0] = "changed afterwards"

	got, err := repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "tune", got.Days[0].HowTo[0])
	assert.Equal(t, "guitar", got.Hobby)

	got.Title = "changed by reader"
	again, err := repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Guitar in 7 Days", again.Title)
}

func TestArchiveID(t *testing.T) {
	v := model.ArchivedVideo{YoutubeID: "abcdefghijk", Title: "x", Hobby: "guitar", Day: 1, Tier: model.TierStrict}
	other := v
	other.Day = 2

	assert.Equal(t, archiveID(v), archiveID(model.ArchivedVideo{YoutubeID: "abcdefghijk", Hobby: "guitar", Day: 1}))
	assert.NotEqual(t, archiveID(v), archiveID(other))
	assert.Equal(t, "strict", archiveProperties(v)["tier"])
	assert.Equal(t, 1, archiveProperties(v)["day"])
}

func TestArchiveClassDefinition(t *testing.T) {
	class := archiveClassDefinition()

	assert.Equal(t, archiveClass, class.Class)
	names := []string{}
	for _, prop := range class.Properties {
		names = append(names, prop.Name)
	}
	assert.ElementsMatch(t, []string{"title", "hobby", "youtubeId", "day", "tier"}, names)
	for key := range archiveProperties(model.ArchivedVideo{}) {
		assert.Contains(t, names, key)
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusCode(fmt.Errorf("wrapped: %w", &fault.WeaviateClientError{StatusCode: http.StatusNotFound})))
	assert.Equal(t, 0, statusCode(errors.New("network down")))
}
