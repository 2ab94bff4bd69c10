package program

import (
	"math/rand"
)

// RepRange is an inclusive rep band for a working set.
type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var (
	bandStrength    = RepRange{Min: 5, Max: 8}
	bandStrengthHyp = RepRange{Min: 6, Max: 10}
	bandHypertrophy = RepRange{Min: 8, Max: 12}
	bandEndurance   = RepRange{Min: 10, Max: 14}
)

// DefaultSetsPerExercise is fixed for every assignment the generator makes.
const DefaultSetsPerExercise = 3

// Policy picks rep bands and rest times from the user's goals and rating.
// The rng only breaks ties between two equally valid bands; everything else
// is deterministic.
type Policy struct {
	rng *rand.Rand
}

func NewPolicy(rng *rand.Rand) *Policy {
	return &Policy{rng: rng}
}

// candidateBands returns the two bands the goal mix allows. A nil second
// band means the choice is forced.
func candidateBands(goals GoalSet, rating int) (RepRange, *RepRange) {
	strength := goals.Has(GoalGetStronger)
	muscle := goals.Has(GoalIncreaseMuscle)
	fatLoss := goals.Has(GoalFatLoss)

	switch {
	case strength && !muscle:
		// pure strength, optionally with fat loss on the side
		if rating > 75 {
			return bandStrength, &bandStrengthHyp
		}
		return bandStrengthHyp, &bandHypertrophy
	case muscle && !fatLoss:
		return bandStrengthHyp, &bandHypertrophy
	case fatLoss:
		return bandHypertrophy, &bandEndurance
	default:
		return bandHypertrophy, nil
	}
}

// RepRangeFor picks the rep band for one exercise assignment.
func (p *Policy) RepRangeFor(goals GoalSet, rating int) RepRange {
	first, second := candidateBands(goals, rating)
	if second == nil {
		return first
	}
	if p.rng.Intn(2) == 0 {
		return first
	}
	return *second
}

// RestSeconds returns the between-set rest for the given capability rating.
func RestSeconds(rating int) int {
	switch {
	case rating > 80:
		return 120
	case rating >= 50:
		return 90
	default:
		return 60
	}
}
