package program_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/lvassor/train-server/internal/catalog"
	"github.com/lvassor/train-server/internal/program"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEquipmentProfile(t *testing.T, experience program.Experience, days int) program.Profile {
	t.Helper()
	equipment := catalog.FixtureEquipment()
	ids := make([]string, 0, len(equipment))
	for _, eq := range equipment {
		ids = append(ids, eq.ID)
	}
	gs, err := program.ParseGoals([]string{"increase_muscle"})
	require.NoError(t, err)
	return program.Profile{
		UserID:            "user-1",
		Experience:        experience,
		Goals:             gs,
		DaysPerWeek:       days,
		SessionMinutes:    60,
		TotalWeeks:        8,
		OwnedEquipmentIDs: ids,
		Rating:            70,
	}
}

func assemble(t *testing.T, profile program.Profile) *program.Program {
	t.Helper()
	c := newFixtureCatalog()
	ctx := context.Background()

	eligible, err := program.EligibleExercises(ctx, c, profile)
	require.NoError(t, err)
	pool, err := program.BuildPool(ctx, c, eligible, profile.Experience, profile.Injuries)
	require.NoError(t, err)

	assembler := program.NewAssembler(program.NewPolicy(rand.New(rand.NewSource(1))))
	return assembler.Assemble(profile, pool)
}

func TestAssemble_advancedFullWeek(t *testing.T) {
	profile := fullEquipmentProfile(t, program.ExperienceAdvanced, 4)
	p := assemble(t, profile)

	require.NoError(t, p.Validate())
	assert.Equal(t, program.SplitUpperLower, p.Split)
	assert.Equal(t, 8, p.TotalWeeks)
	require.Len(t, p.Sessions, 4)

	for _, session := range p.Sessions {
		require.NotEmpty(t, session.Exercises, "session %s", session.Name)

		seen := make(map[string]bool)
		complexity4 := 0
		for i, ex := range session.Exercises {
			assert.False(t, seen[ex.CanonicalName], "duplicate %s in %s", ex.CanonicalName, session.Name)
			seen[ex.CanonicalName] = true

			if ex.Complexity == 4 {
				complexity4++
				assert.Equal(t, 0, i, "complexity-4 movement must open the session")
			}

			assert.Equal(t, program.DefaultSetsPerExercise, ex.Sets)
			assert.Positive(t, ex.Reps.Min)
			assert.GreaterOrEqual(t, ex.Reps.Max, ex.Reps.Min)
			assert.Equal(t, 90, ex.RestSeconds) // rating 70
		}
		assert.LessOrEqual(t, complexity4, 1)
	}
}

func TestAssemble_intermediateNeverGetsComplexity4(t *testing.T) {
	profile := fullEquipmentProfile(t, program.ExperienceIntermediate, 3)
	p := assemble(t, profile)

	require.NoError(t, p.Validate())
	for _, session := range p.Sessions {
		for _, ex := range session.Exercises {
			if ex.Complexity >= 4 {
				// only isolation movements may pass the ceiling, and none
				// of those reach complexity 4 in any sane catalog
				t.Fatalf("intermediate session got complexity-4 %s", ex.CanonicalName)
			}
		}
	}
}

func TestAssemble_targetMusclesGetExtraSlot(t *testing.T) {
	base := fullEquipmentProfile(t, program.ExperienceIntermediate, 1)
	plain := assemble(t, base)

	base.TargetMuscles = []string{"chest"}
	targeted := assemble(t, base)

	countChest := func(p *program.Program) int {
		n := 0
		for _, s := range p.Sessions {
			for _, ex := range s.Exercises {
				if ex.PrimaryMuscle == "chest" {
					n++
				}
			}
		}
		return n
	}
	assert.Greater(t, countChest(targeted), countChest(plain))
}

func TestAssemble_emptyPoolWarnsPerSession(t *testing.T) {
	profile := fullEquipmentProfile(t, program.ExperienceBeginner, 3)
	assembler := program.NewAssembler(program.NewPolicy(rand.New(rand.NewSource(1))))

	p := assembler.Assemble(profile, nil)
	require.Len(t, p.Sessions, 3)

	emptyDayWarnings := 0
	for _, warning := range p.Warnings {
		if strings.HasPrefix(warning, program.WarningEmptyDay) {
			emptyDayWarnings++
		}
	}
	assert.Equal(t, 3, emptyDayWarnings)
	for _, session := range p.Sessions {
		assert.Empty(t, session.Exercises)
	}
}

func TestAssemble_bodyweightOnlyStillTrains(t *testing.T) {
	gs, err := program.ParseGoals([]string{"fat_loss"})
	require.NoError(t, err)
	profile := program.Profile{
		UserID:         "user-2",
		Experience:     program.ExperienceBeginner,
		Goals:          gs,
		DaysPerWeek:    2,
		SessionMinutes: 45,
		Rating:         40,
	}
	p := assemble(t, profile)

	require.NoError(t, p.Validate())
	assert.Equal(t, program.SplitFullBody, p.Split)
	assert.Equal(t, program.DefaultTotalWeeks, p.TotalWeeks)
	for _, session := range p.Sessions {
		assert.NotEmpty(t, session.Exercises, "bodyweight fallback must keep %s non-empty", session.Name)
		for _, ex := range session.Exercises {
			assert.Equal(t, 60, ex.RestSeconds) // rating 40
		}
	}
}

// A generated catalog shakes out pool and ordering edge cases the curated
// fixture never hits.
func TestAssemble_generatedCatalog(t *testing.T) {
	faker := gofakeit.New(7)
	c := catalog.NewInMemory(
		catalog.RandomExercises(faker, 200),
		catalog.FixtureEquipment(),
		nil,
	)
	ctx := context.Background()

	experiences := []program.Experience{
		program.ExperienceNone,
		program.ExperienceBeginner,
		program.ExperienceIntermediate,
		program.ExperienceAdvanced,
	}
	for _, experience := range experiences {
		for days := 1; days <= 6; days++ {
			profile := fullEquipmentProfile(t, experience, days)

			eligible, err := program.EligibleExercises(ctx, c, profile)
			require.NoError(t, err)
			pool, err := program.BuildPool(ctx, c, eligible, experience, nil)
			require.NoError(t, err)

			assembler := program.NewAssembler(program.NewPolicy(rand.New(rand.NewSource(int64(days)))))
			p := assembler.Assemble(profile, pool)
			require.NoError(t, p.Validate(), "experience %s, %d days", experience, days)
			require.Len(t, p.Sessions, days)

			if !experience.AllowsComplexity4() {
				for _, session := range p.Sessions {
					for _, ex := range session.Exercises {
						assert.Less(t, ex.Complexity, 4, "session %s", session.Name)
					}
				}
			}
		}
	}
}

func TestProgram_Validate(t *testing.T) {
	valid := program.Program{
		ID:         "p1",
		UserID:     "u1",
		TotalWeeks: 8,
		Sessions: []program.Session{{
			Name: "Day 1",
			Exercises: []program.AssignedExercise{
				{CanonicalName: "a", Complexity: 4, Sets: 3, Reps: program.RepRange{Min: 6, Max: 10}, RestSeconds: 90},
				{CanonicalName: "b", Complexity: 2, Sets: 3, Reps: program.RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			},
		}},
	}
	assert.NoError(t, valid.Validate())

	broken := valid
	broken.TotalWeeks = 0
	broken.Sessions = []program.Session{{
		Name: "Day 1",
		Exercises: []program.AssignedExercise{
			{CanonicalName: "a", Complexity: 2, Sets: 3, Reps: program.RepRange{Min: 6, Max: 10}, RestSeconds: 90},
			{CanonicalName: "a", Complexity: 4, Sets: 0, Reps: program.RepRange{Min: 10, Max: 8}, RestSeconds: 0},
		},
	}}
	err := broken.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no weeks")
	assert.Contains(t, err.Error(), "repeats")
	assert.Contains(t, err.Error(), "position 1")
	assert.Contains(t, err.Error(), "no sets")
	assert.Contains(t, err.Error(), "invalid rep range")
	assert.Contains(t, err.Error(), "no rest")
}
