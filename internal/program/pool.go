package program

import (
	"context"
	"fmt"

	"github.com/lvassor/train-server/internal/catalog"
)

// BuildPool filters an already equipment-eligible slice down to the
// candidate pool: complexity within the experience ceiling (isolation
// movements exempt) and nothing contraindicated for the user's injuries.
// An empty pool is a valid result, never an error.
func BuildPool(
	ctx context.Context,
	cat Catalog,
	eligible []catalog.Exercise,
	experience Experience,
	injuries []string,
) ([]catalog.Exercise, error) {
	unsafe := make(map[string]bool)
	if len(injuries) > 0 {
		canonicals, err := cat.ContraindicatedCanonicals(ctx, injuries)
		if err != nil {
			return nil, fmt.Errorf("load contraindications: %w", err)
		}
		for _, name := range canonicals {
			unsafe[name] = true
		}
	}

	ceiling := experience.MaxComplexity()
	pool := make([]catalog.Exercise, 0, len(eligible))
	for _, ex := range eligible {
		if !ex.IsIsolation && ex.ComplexityLevel > ceiling {
			continue
		}
		if unsafe[ex.CanonicalName] {
			continue
		}
		pool = append(pool, ex)
	}
	return pool, nil
}
