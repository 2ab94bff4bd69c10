package workout

import (
	"time"
)

// SetLog is one working set as the user entered it. Completed is the
// user-facing checkmark; evaluation counts a set as performed once it has
// reps, whatever the checkmark says.
type SetLog struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight,omitempty"`
	Completed bool    `json:"completed"`
}

// ExerciseLog is the logged outcome of one assigned exercise, together with
// the prescription it was performed against.
type ExerciseLog struct {
	ExerciseID    string   `json:"exerciseId"`
	CanonicalName string   `json:"canonicalName"`
	ExpectedSets  int      `json:"expectedSets"`
	RepMin        int      `json:"repMin"`
	RepMax        int      `json:"repMax"`
	Sets          []SetLog `json:"sets"`
	Notes         string   `json:"notes,omitempty"`
	Completed     bool     `json:"completed"`
}

// performedSetCount counts sets with at least one rep. A zero-rep set is an
// empty input row, not a performed set.
func (el ExerciseLog) performedSetCount() int {
	n := 0
	for _, s := range el.Sets {
		if s.Reps > 0 {
			n++
		}
	}
	return n
}

// SessionLog is one logged training day of a program week.
type SessionLog struct {
	ID        string        `json:"id"`
	ProgramID string        `json:"programId"`
	UserID    string        `json:"userId"`
	Week      int           `json:"week"`
	DayIndex  int           `json:"dayIndex"`
	Exercises []ExerciseLog `json:"exercises"`
	CreatedAt time.Time     `json:"createdAt"`
}
