package program

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Warning codes attached to a generated program. They flag quality
// problems without failing the generation.
const (
	WarningLowFill     = "low_fill"
	WarningEmptyDay    = "empty_day"
	WarningRepeatHeavy = "repeat_heavy_use"
)

// AssignedExercise is one exercise placed into a session, with its
// prescription.
type AssignedExercise struct {
	ExerciseID    string   `json:"exerciseId"`
	CanonicalName string   `json:"canonicalName"`
	DisplayName   string   `json:"displayName"`
	PrimaryMuscle string   `json:"primaryMuscle"`
	Complexity    int      `json:"complexity"`
	Sets          int      `json:"sets"`
	Reps          RepRange `json:"reps"`
	RestSeconds   int      `json:"restSeconds"`
}

// Session is one training day of the program.
type Session struct {
	Name      string             `json:"name"`
	DayIndex  int                `json:"dayIndex"`
	Exercises []AssignedExercise `json:"exercises"`
}

// Program is a full generated training block: one week of sessions,
// repeated for TotalWeeks weeks.
type Program struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Split      Split     `json:"split"`
	TotalWeeks int       `json:"totalWeeks"`
	Sessions   []Session `json:"sessions"`
	Warnings   []string  `json:"warnings,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks the structural invariants every generated program must
// hold. It reports all violations at once, not just the first.
func (p *Program) Validate() error {
	var err error
	if p.UserID == "" {
		err = multierr.Append(err, fmt.Errorf("program has no user"))
	}
	if len(p.Sessions) == 0 {
		err = multierr.Append(err, fmt.Errorf("program has no sessions"))
	}
	if p.TotalWeeks <= 0 {
		err = multierr.Append(err, fmt.Errorf("program has no weeks"))
	}

	for _, session := range p.Sessions {
		seen := make(map[string]bool, len(session.Exercises))
		complexity4 := 0
		for i, ex := range session.Exercises {
			if seen[ex.CanonicalName] {
				err = multierr.Append(err, fmt.Errorf(
					"session %q repeats %s", session.Name, ex.CanonicalName))
			}
			seen[ex.CanonicalName] = true

			if ex.Complexity >= 4 {
				complexity4++
				if i != 0 {
					err = multierr.Append(err, fmt.Errorf(
						"session %q has a complexity-4 movement at position %d", session.Name, i))
				}
			}
			if ex.Sets <= 0 {
				err = multierr.Append(err, fmt.Errorf(
					"session %q: %s has no sets", session.Name, ex.CanonicalName))
			}
			if ex.Reps.Min <= 0 || ex.Reps.Max < ex.Reps.Min {
				err = multierr.Append(err, fmt.Errorf(
					"session %q: %s has invalid rep range %d-%d",
					session.Name, ex.CanonicalName, ex.Reps.Min, ex.Reps.Max))
			}
			if ex.RestSeconds <= 0 {
				err = multierr.Append(err, fmt.Errorf(
					"session %q: %s has no rest", session.Name, ex.CanonicalName))
			}
		}
		if complexity4 > 1 {
			err = multierr.Append(err, fmt.Errorf(
				"session %q has %d complexity-4 movements", session.Name, complexity4))
		}
	}
	return err
}
