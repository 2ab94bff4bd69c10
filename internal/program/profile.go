package program

import (
	"fmt"
	"sort"
	"strings"
)

// Experience is the user's self-reported training experience tier.
type Experience string

const (
	ExperienceNone         Experience = "noExperience"
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

func ParseExperience(raw string) (Experience, error) {
	switch Experience(strings.TrimSpace(raw)) {
	case ExperienceNone:
		return ExperienceNone, nil
	case ExperienceBeginner:
		return ExperienceBeginner, nil
	case ExperienceIntermediate:
		return ExperienceIntermediate, nil
	case ExperienceAdvanced:
		return ExperienceAdvanced, nil
	default:
		return "", fmt.Errorf("unknown experience level: %q", raw)
	}
}

// MaxComplexity is the hardest compound movement this tier is allowed to
// train. Isolation movements are not bound by it.
func (e Experience) MaxComplexity() int {
	switch e {
	case ExperienceNone:
		return 1
	case ExperienceBeginner:
		return 2
	case ExperienceIntermediate:
		return 3
	case ExperienceAdvanced:
		return 4
	default:
		return 1
	}
}

// AllowsComplexity4 reports whether sessions for this tier may carry one
// complexity-4 movement. Only advanced lifters get one, and at most one
// per session.
func (e Experience) AllowsComplexity4() bool {
	return e == ExperienceAdvanced
}

// Goal is one training goal tag.
type Goal string

const (
	GoalGetStronger    Goal = "get_stronger"
	GoalIncreaseMuscle Goal = "increase_muscle"
	GoalFatLoss        Goal = "fat_loss"
)

// GoalSet is the set of goals a user selected. Order never matters.
type GoalSet map[Goal]bool

// ParseGoals builds a GoalSet from raw tags, dropping duplicates. Unknown
// tags are rejected at the boundary rather than silently ignored.
func ParseGoals(raw []string) (GoalSet, error) {
	goals := make(GoalSet, len(raw))
	for _, tag := range raw {
		switch g := Goal(strings.TrimSpace(tag)); g {
		case GoalGetStronger, GoalIncreaseMuscle, GoalFatLoss:
			goals[g] = true
		default:
			return nil, fmt.Errorf("unknown goal: %q", tag)
		}
	}
	return goals, nil
}

func (gs GoalSet) Has(g Goal) bool { return gs[g] }

func (gs GoalSet) Tags() []string {
	tags := make([]string, 0, len(gs))
	for g := range gs {
		tags = append(tags, string(g))
	}
	sort.Strings(tags)
	return tags
}

// Profile is everything the generator needs to know about the user.
type Profile struct {
	UserID            string
	Experience        Experience
	Goals             GoalSet
	DaysPerWeek       int
	SessionMinutes    int
	TotalWeeks        int
	OwnedEquipmentIDs []string
	Injuries          []string
	TargetMuscles     []string
	Rating            int // 0-100 capability score
}

// Split is the weekly training split shape.
type Split string

const (
	SplitFullBody   Split = "full_body"
	SplitUpperLower Split = "upper_lower"
	SplitPushPull   Split = "push_pull_legs"
	SplitHybrid     Split = "hybrid"
)

// SplitForDays maps training frequency to a split. Two days a week go
// full-body unless sessions are long enough to carry an upper/lower pair.
func SplitForDays(days, sessionMinutes int) Split {
	switch {
	case days <= 1:
		return SplitFullBody
	case days == 2:
		if sessionMinutes >= 60 {
			return SplitUpperLower
		}
		return SplitFullBody
	case days == 3:
		return SplitPushPull
	case days == 4:
		return SplitUpperLower
	case days == 5:
		return SplitHybrid
	default:
		return SplitPushPull
	}
}
