package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ewintr.nl/hobbyplan/model"
	"github.com/google/uuid"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/fault"
	"github.com/weaviate/weaviate/entities/models"
)

const archiveClass = "CuratedVideo"

// archiveNamespace seeds the object ids, so one video selected for the same
// hobby and day is stored once.
var archiveNamespace = uuid.MustParse("6f1c2a8e-5d43-4b8f-9a57-2e0c7d9b3f14")

// Weaviate archives curated selections in a vector store, with the title
// vectorized so related videos can be found by concept later on.
type Weaviate struct {
	client *weaviate.Client
}

func NewWeaviate(host, weaviateAPIKey, openaiAPIKey string) (*Weaviate, error) {
	client, err := weaviate.NewClient(weaviate.Config{
		Scheme:     "https",
		Host:       host,
		AuthConfig: auth.ApiKey{Value: weaviateAPIKey},
		Headers: map[string]string{
			"X-OpenAI-Api-Key": openaiAPIKey,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}

	return &Weaviate{client: client}, nil
}

// EnsureSchema creates the archive class when it does not exist yet.
func (w *Weaviate) EnsureSchema(ctx context.Context) error {
	_, err := w.client.Schema().ClassGetter().WithClassName(archiveClass).Do(ctx)
	switch {
	case err == nil:
		return nil
	case statusCode(err) != http.StatusNotFound:
		return fmt.Errorf("failed to get archive class: %w", err)
	}

	if err := w.client.Schema().ClassCreator().WithClass(archiveClassDefinition()).Do(ctx); err != nil {
		return fmt.Errorf("failed to create archive class: %w", err)
	}
	return nil
}

func (w *Weaviate) Save(ctx context.Context, video model.ArchivedVideo) error {
	id := archiveID(video).String()
	props := archiveProperties(video)

	exists, err := w.client.Data().Checker().
		WithClassName(archiveClass).
		WithID(id).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check archived video: %w", err)
	}

	if exists {
		err = w.client.Data().Updater().
			WithClassName(archiveClass).
			WithID(id).
			WithProperties(props).
			Do(ctx)
	} else {
		_, err = w.client.Data().Creator().
			WithClassName(archiveClass).
			WithID(id).
			WithProperties(props).
			Do(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to archive video %s: %w", video.YoutubeID, err)
	}

	return nil
}

func archiveClassDefinition() *models.Class {
	skip := map[string]any{
		"text2vec-openai": map[string]any{"skip": true},
	}
	return &models.Class{
		Class:       archiveClass,
		Description: "Videos selected for hobby plan days",
		Vectorizer:  "text2vec-openai",
		ModuleConfig: map[string]any{
			"text2vec-openai": map[string]any{
				"model":              "ada",
				"modelVersion":       "002",
				"type":               "text",
				"vectorizeClassName": false,
			},
		},
		Properties: []*models.Property{
			{Name: "title", DataType: []string{"text"}},
			{Name: "hobby", DataType: []string{"text"}},
			{Name: "youtubeId", DataType: []string{"text"}, ModuleConfig: skip},
			{Name: "day", DataType: []string{"int"}, ModuleConfig: skip},
			{Name: "tier", DataType: []string{"text"}, ModuleConfig: skip},
		},
	}
}

func archiveID(video model.ArchivedVideo) uuid.UUID {
	return uuid.NewSHA1(archiveNamespace, []byte(fmt.Sprintf("%s|%s|%d", video.YoutubeID, video.Hobby, video.Day)))
}

func archiveProperties(video model.ArchivedVideo) map[string]any {
	return map[string]any{
		"youtubeId": string(video.YoutubeID),
		"title":     video.Title,
		"hobby":     video.Hobby,
		"day":       video.Day,
		"tier":      string(video.Tier),
	}
}

func statusCode(err error) int {
	var clientErr *fault.WeaviateClientError
	if errors.As(err, &clientErr) {
		return clientErr.StatusCode
	}
	return 0
}
