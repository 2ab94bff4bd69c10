package program

import (
	"context"

	"github.com/lvassor/train-server/internal/catalog"
)

// Catalog is the read side of the exercise catalog the generator runs on.
type Catalog interface {
	QueryExercises(ctx context.Context, params catalog.QueryParams) ([]catalog.Exercise, error)
	GetExercise(ctx context.Context, id string) (*catalog.Exercise, error)
	GetEquipment(ctx context.Context, id string) (*catalog.Equipment, error)
	ListEquipment(ctx context.Context) ([]catalog.Equipment, error)
	ContraindicatedCanonicals(ctx context.Context, injuries []string) ([]string, error)
}
