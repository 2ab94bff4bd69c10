package catalog

import (
	"context"
	"sort"
	"sync"
)

// InMemory is a catalog backed by slices instead of SQL. It implements the
// same query contract as Repo and is used in tests and for local runs
// without a database.
type InMemory struct {
	mu                sync.RWMutex
	exercises         []Exercise
	equipment         map[string]Equipment
	contraindications []Contraindication
}

func NewInMemory(
	exercises []Exercise,
	equipment []Equipment,
	contraindications []Contraindication,
) *InMemory {
	eqIndex := make(map[string]Equipment, len(equipment))
	for _, eq := range equipment {
		eqIndex[eq.ID] = eq
	}
	return &InMemory{
		exercises:         exercises,
		equipment:         eqIndex,
		contraindications: contraindications,
	}
}

func (m *InMemory) QueryExercises(_ context.Context, params QueryParams) ([]Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	unsafe := m.contraindicatedSet(params.ExcludeInjuries)

	matched := make([]Exercise, 0)
	for _, e := range m.exercises {
		if params.OnlyProgramme && !e.InProgramme {
			continue
		}
		if params.PrimaryMuscle != "" && e.PrimaryMuscle != params.PrimaryMuscle {
			continue
		}
		if params.CanonicalName != "" && e.CanonicalName != params.CanonicalName {
			continue
		}
		if len(params.OwnedEquipmentIDs) > 0 && !equipmentSatisfied(e, params.OwnedEquipmentIDs) {
			continue
		}
		if params.MaxComplexity > 0 && !e.IsIsolation && e.ComplexityLevel > params.MaxComplexity {
			continue
		}
		if unsafe[e.CanonicalName] {
			continue
		}
		if params.ExcludeIDs[e.ID] {
			continue
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].ComplexityLevel != matched[j].ComplexityLevel {
			return matched[i].ComplexityLevel > matched[j].ComplexityLevel
		}
		return matched[i].DisplayName < matched[j].DisplayName
	})

	return matched, nil
}

func (m *InMemory) GetExercise(_ context.Context, id string) (*Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.exercises {
		if m.exercises[i].ID == id {
			e := m.exercises[i]
			return &e, nil
		}
	}
	return nil, ErrExerciseNotFound
}

func (m *InMemory) GetEquipment(_ context.Context, id string) (*Equipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	eq, ok := m.equipment[id]
	if !ok {
		return nil, ErrEquipmentNotFound
	}
	return &eq, nil
}

func (m *InMemory) ListEquipment(_ context.Context) ([]Equipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	equipment := make([]Equipment, 0, len(m.equipment))
	for _, eq := range m.equipment {
		equipment = append(equipment, eq)
	}
	sort.Slice(equipment, func(i, j int) bool {
		return equipment[i].ID < equipment[j].ID
	})
	return equipment, nil
}

func (m *InMemory) ContraindicatedCanonicals(_ context.Context, injuries []string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	unsafe := m.contraindicatedSet(injuries)
	canonicals := make([]string, 0, len(unsafe))
	for name := range unsafe {
		canonicals = append(canonicals, name)
	}
	sort.Strings(canonicals)
	return canonicals, nil
}

func (m *InMemory) contraindicatedSet(injuries []string) map[string]bool {
	if len(injuries) == 0 {
		return nil
	}
	injurySet := make(map[string]bool, len(injuries))
	for _, injury := range injuries {
		injurySet[injury] = true
	}
	unsafe := make(map[string]bool)
	for _, c := range m.contraindications {
		if injurySet[c.InjuryType] {
			unsafe[c.CanonicalName] = true
		}
	}
	return unsafe
}

func equipmentSatisfied(e Exercise, owned map[string]bool) bool {
	if !owned[e.EquipmentID1] {
		return false
	}
	if e.EquipmentID2 != nil && !owned[*e.EquipmentID2] {
		return false
	}
	return true
}
