package storage

import (
	"context"
	"errors"

	"ewintr.nl/hobbyplan/model"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type PlanRepository interface {
	Save(ctx context.Context, plan *model.PlanRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PlanRecord, error)
}

// VideoArchive records curated selections for later search.
type VideoArchive interface {
	Save(ctx context.Context, video model.ArchivedVideo) error
}
