package program

import (
	"context"
	"fmt"

	"github.com/lvassor/train-server/internal/catalog"
)

// BodyweightEquipmentID is always treated as owned. Everyone has a body.
const BodyweightEquipmentID = "eq_bodyweight"

// ResolveOwned expands the user's selected equipment IDs into the full
// owned set: bodyweight is always included, and owning any item of a
// category implies owning the category's base row (and vice versa, a base
// row selection covers only itself).
func ResolveOwned(ctx context.Context, cat Catalog, selected []string) (map[string]bool, error) {
	owned := map[string]bool{
		BodyweightEquipmentID: true,
	}

	for _, id := range selected {
		eq, err := cat.GetEquipment(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve equipment %q: %w", id, err)
		}
		owned[eq.ID] = true
		if eq.ParentID != nil {
			owned[*eq.ParentID] = true
		}
	}

	return owned, nil
}

// EligibleExercises returns the slice of the programme catalog the user
// can physically perform: primary equipment owned, secondary equipment
// absent or owned. Complexity and injuries are handled later by BuildPool.
func EligibleExercises(ctx context.Context, cat Catalog, profile Profile) ([]catalog.Exercise, error) {
	owned, err := ResolveOwned(ctx, cat, profile.OwnedEquipmentIDs)
	if err != nil {
		return nil, err
	}

	exercises, err := cat.QueryExercises(ctx, catalog.QueryParams{
		OwnedEquipmentIDs: owned,
		OnlyProgramme:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("query eligible exercises: %w", err)
	}
	return exercises, nil
}
