package program

import (
	"sort"

	"github.com/lvassor/train-server/internal/catalog"
)

// MaxAlternatives caps the substitution list shown for a single swap.
const MaxAlternatives = 5

// Alternatives ranks swap candidates for the current exercise out of the
// user's candidate pool. Candidates share the primary muscle and never
// include the current exercise itself. Same-equipment-category candidates
// rank first, display name breaks ties. No randomness: the same inputs
// always produce the same list. An empty list is a valid answer.
func Alternatives(
	current catalog.Exercise,
	pool []catalog.Exercise,
	equipment map[string]catalog.Equipment,
) []catalog.Exercise {
	currentCategory := current.EquipmentCategory(equipment)

	candidates := make([]catalog.Exercise, 0, MaxAlternatives)
	for _, ex := range pool {
		if ex.ID == current.ID || ex.CanonicalName == current.CanonicalName {
			continue
		}
		if ex.PrimaryMuscle != current.PrimaryMuscle {
			continue
		}
		candidates = append(candidates, ex)
	}

	sort.Slice(candidates, func(i, j int) bool {
		iSame := candidates[i].EquipmentCategory(equipment) == currentCategory
		jSame := candidates[j].EquipmentCategory(equipment) == currentCategory
		if iSame != jSame {
			return iSame
		}
		return candidates[i].DisplayName < candidates[j].DisplayName
	})

	if len(candidates) > MaxAlternatives {
		candidates = candidates[:MaxAlternatives]
	}
	return candidates
}

// equipmentIndex builds the id → equipment lookup Alternatives needs.
func equipmentIndex(equipment []catalog.Equipment) map[string]catalog.Equipment {
	index := make(map[string]catalog.Equipment, len(equipment))
	for _, eq := range equipment {
		index[eq.ID] = eq
	}
	return index
}
