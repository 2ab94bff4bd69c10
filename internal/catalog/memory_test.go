package catalog_test

import (
	"context"
	"testing"

	"github.com/lvassor/train-server/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureCatalog() *catalog.InMemory {
	exercises, equipment, contraindications := catalog.Fixture()
	return catalog.NewInMemory(exercises, equipment, contraindications)
}

func TestInMemory_QueryExercises_noFilters(t *testing.T) {
	c := newFixtureCatalog()
	ctx := context.Background()

	exercises, err := c.QueryExercises(ctx, catalog.QueryParams{})
	require.NoError(t, err)
	require.NotEmpty(t, exercises)

	// descending complexity, then display name
	for i := 1; i < len(exercises); i++ {
		prev, cur := exercises[i-1], exercises[i]
		if prev.ComplexityLevel == cur.ComplexityLevel {
			assert.LessOrEqual(t, prev.DisplayName, cur.DisplayName)
		} else {
			assert.Greater(t, prev.ComplexityLevel, cur.ComplexityLevel)
		}
	}
}

func TestInMemory_QueryExercises_equipmentOwnership(t *testing.T) {
	c := newFixtureCatalog()
	ctx := context.Background()

	owned := map[string]bool{
		"eq_dumbbell":   true,
		"eq_bodyweight": true,
	}
	exercises, err := c.QueryExercises(ctx, catalog.QueryParams{OwnedEquipmentIDs: owned})
	require.NoError(t, err)
	require.NotEmpty(t, exercises)

	for _, e := range exercises {
		assert.True(t, owned[e.EquipmentID1], "unexpected primary equipment for %s", e.CanonicalName)
		if e.EquipmentID2 != nil {
			assert.True(t, owned[*e.EquipmentID2], "unexpected secondary equipment for %s", e.CanonicalName)
		}
	}

	// dumbbell bench press needs a bench too, so it must be gone
	for _, e := range exercises {
		assert.NotEqual(t, "dumbbell_bench_press", e.CanonicalName)
	}

	// adding the bench can only grow the result
	owned["eq_bench"] = true
	withBench, err := c.QueryExercises(ctx, catalog.QueryParams{OwnedEquipmentIDs: owned})
	require.NoError(t, err)
	assert.Greater(t, len(withBench), len(exercises))
}

func TestInMemory_QueryExercises_complexityCeiling(t *testing.T) {
	c := newFixtureCatalog()
	ctx := context.Background()

	exercises, err := c.QueryExercises(ctx, catalog.QueryParams{MaxComplexity: 2})
	require.NoError(t, err)
	require.NotEmpty(t, exercises)

	for _, e := range exercises {
		if e.IsIsolation {
			continue // isolation movements ignore the ceiling
		}
		assert.LessOrEqual(t, e.ComplexityLevel, 2, "%s over the ceiling", e.CanonicalName)
	}
}

func TestInMemory_QueryExercises_contraindications(t *testing.T) {
	c := newFixtureCatalog()
	ctx := context.Background()

	exercises, err := c.QueryExercises(ctx, catalog.QueryParams{
		ExcludeInjuries: []string{"knee", "lower_back"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, exercises)

	excluded := map[string]bool{
		"barbell_back_squat":    true,
		"bulgarian_split_squat": true,
		"leg_extension":         true,
		"deadlift":              true,
		"romanian_deadlift":     true,
		"barbell_row":           true,
	}
	for _, e := range exercises {
		assert.False(t, excluded[e.CanonicalName], "%s should be contraindicated", e.CanonicalName)
	}

	canonicals, err := c.ContraindicatedCanonicals(ctx, []string{"knee"})
	require.NoError(t, err)
	assert.Equal(t, []string{"barbell_back_squat", "bulgarian_split_squat", "leg_extension"}, canonicals)
}

func TestInMemory_QueryExercises_primaryMuscleAndExclude(t *testing.T) {
	c := newFixtureCatalog()
	ctx := context.Background()

	exercises, err := c.QueryExercises(ctx, catalog.QueryParams{
		PrimaryMuscle: "chest",
		ExcludeIDs:    map[string]bool{"ex001": true},
	})
	require.NoError(t, err)
	require.NotEmpty(t, exercises)

	for _, e := range exercises {
		assert.Equal(t, "chest", e.PrimaryMuscle)
		assert.NotEqual(t, "ex001", e.ID)
	}
}

func TestInMemory_GetExercise(t *testing.T) {
	c := newFixtureCatalog()
	ctx := context.Background()

	e, err := c.GetExercise(ctx, "ex030")
	require.NoError(t, err)
	assert.Equal(t, "barbell_back_squat", e.CanonicalName)
	assert.Equal(t, 4, e.ComplexityLevel)

	_, err = c.GetExercise(ctx, "nope")
	assert.ErrorIs(t, err, catalog.ErrExerciseNotFound)
}

func TestInMemory_Equipment(t *testing.T) {
	c := newFixtureCatalog()
	ctx := context.Background()

	eq, err := c.GetEquipment(ctx, "eq_olympic_barbell")
	require.NoError(t, err)
	assert.Equal(t, "barbell", eq.Category)
	require.NotNil(t, eq.ParentID)
	assert.Equal(t, "eq_barbell", *eq.ParentID)

	base, err := c.GetEquipment(ctx, "eq_barbell")
	require.NoError(t, err)
	assert.Equal(t, base.Name, base.Category)
	assert.Nil(t, base.ParentID)

	_, err = c.GetEquipment(ctx, "nope")
	assert.ErrorIs(t, err, catalog.ErrEquipmentNotFound)

	all, err := c.ListEquipment(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}
