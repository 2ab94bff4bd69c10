package program

import (
	"fmt"
	"sort"
	"time"

	"github.com/lvassor/train-server/internal/catalog"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// lowFillThreshold is the share of template slots below which a session is
// flagged as under-filled.
const lowFillThreshold = 0.75

// DefaultTotalWeeks is how long a generated block runs when the
// questionnaire does not say.
const DefaultTotalWeeks = 8

// Assembler builds Program structures out of an eligible exercise pool.
type Assembler struct {
	policy *Policy
}

func NewAssembler(policy *Policy) *Assembler {
	return &Assembler{policy: policy}
}

// Assemble fills the week's session templates from the eligible pool and
// attaches the rep/rest prescription to every pick. The pool must already
// be equipment- and injury-filtered.
func (a *Assembler) Assemble(profile Profile, pool []catalog.Exercise) *Program {
	split := SplitForDays(profile.DaysPerWeek, profile.SessionMinutes)
	templates := WeekTemplates(split, profile.DaysPerWeek)

	byMuscle := groupByMuscle(pool)

	totalWeeks := profile.TotalWeeks
	if totalWeeks <= 0 {
		totalWeeks = DefaultTotalWeeks
	}

	p := &Program{
		ID:         uuid.NewString(),
		UserID:     profile.UserID,
		Split:      split,
		TotalWeeks: totalWeeks,
		CreatedAt:  time.Now(),
	}

	usedCounts := make(map[string]int)
	for dayIdx, tmpl := range templates {
		tmpl = prioritized(tmpl, profile.TargetMuscles)
		session, warnings := a.assembleSession(tmpl, dayIdx, byMuscle, profile, usedCounts)
		p.Sessions = append(p.Sessions, session)
		p.Warnings = append(p.Warnings, warnings...)
	}

	for canonical, count := range usedCounts {
		if count > len(templates) {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"%s: %s picked %d times across the week", WarningRepeatHeavy, canonical, count))
		}
	}
	sort.Strings(p.Warnings)

	return p
}

func (a *Assembler) assembleSession(
	tmpl SessionTemplate,
	dayIdx int,
	byMuscle map[string][]catalog.Exercise,
	profile Profile,
	usedCounts map[string]int,
) (Session, []string) {
	session := Session{
		Name:     tmpl.Name,
		DayIndex: dayIdx,
	}
	var warnings []string

	totalSlots := 0
	usedCanonical := make(map[string]bool)
	complexity4Taken := false

	for _, slot := range tmpl.Slots {
		totalSlots += slot.Count
		candidates := byMuscle[slot.Muscle]
		if len(candidates) == 0 {
			log.Tracef("no eligible exercises for %s in session %s", slot.Muscle, tmpl.Name)
			continue
		}

		picked := 0
		for _, ex := range rankCandidates(candidates) {
			if picked >= slot.Count {
				break
			}
			if usedCanonical[ex.CanonicalName] {
				continue
			}
			if ex.ComplexityLevel >= 4 {
				if !profile.Experience.AllowsComplexity4() || complexity4Taken {
					continue
				}
				complexity4Taken = true
			}
			usedCanonical[ex.CanonicalName] = true
			usedCounts[ex.CanonicalName]++
			session.Exercises = append(session.Exercises, a.assign(ex, profile))
			picked++
		}
	}

	orderSession(&session)

	if len(session.Exercises) == 0 {
		warnings = append(warnings, fmt.Sprintf("%s: session %q", WarningEmptyDay, tmpl.Name))
		if fallback, ok := bodyweightFallback(byMuscle, tmpl); ok {
			session.Exercises = append(session.Exercises, a.assign(fallback, profile))
		}
	} else if totalSlots > 0 && float64(len(session.Exercises)) < lowFillThreshold*float64(totalSlots) {
		warnings = append(warnings, fmt.Sprintf(
			"%s: session %q filled %d of %d slots",
			WarningLowFill, tmpl.Name, len(session.Exercises), totalSlots))
	}

	return session, warnings
}

func (a *Assembler) assign(ex catalog.Exercise, profile Profile) AssignedExercise {
	return AssignedExercise{
		ExerciseID:    ex.ID,
		CanonicalName: ex.CanonicalName,
		DisplayName:   ex.DisplayName,
		PrimaryMuscle: ex.PrimaryMuscle,
		Complexity:    ex.ComplexityLevel,
		Sets:          DefaultSetsPerExercise,
		Reps:          a.policy.RepRangeFor(profile.Goals, profile.Rating),
		RestSeconds:   RestSeconds(profile.Rating),
	}
}

// rankCandidates orders a muscle group's pool for selection: best rated
// first, display name as the deterministic tie-break.
func rankCandidates(candidates []catalog.Exercise) []catalog.Exercise {
	ranked := make([]catalog.Exercise, len(candidates))
	copy(ranked, candidates)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].DisplayName < ranked[j].DisplayName
	})
	return ranked
}

// orderSession puts the session's picks into execution order: the
// complexity-4 movement (if any) first while fresh, then ascending
// complexity, display name as the tie-break.
func orderSession(session *Session) {
	sort.SliceStable(session.Exercises, func(i, j int) bool {
		a, b := session.Exercises[i], session.Exercises[j]
		aTop, bTop := a.Complexity >= 4, b.Complexity >= 4
		if aTop != bTop {
			return aTop
		}
		if a.Complexity != b.Complexity {
			return a.Complexity < b.Complexity
		}
		return a.DisplayName < b.DisplayName
	})
}

// bodyweightFallback finds any bodyweight movement matching the template's
// muscles so an otherwise empty day still has something to do.
func bodyweightFallback(byMuscle map[string][]catalog.Exercise, tmpl SessionTemplate) (catalog.Exercise, bool) {
	for _, slot := range tmpl.Slots {
		for _, ex := range byMuscle[slot.Muscle] {
			if ex.EquipmentID1 == BodyweightEquipmentID && ex.EquipmentID2 == nil {
				return ex, true
			}
		}
	}
	return catalog.Exercise{}, false
}

func groupByMuscle(pool []catalog.Exercise) map[string][]catalog.Exercise {
	byMuscle := make(map[string][]catalog.Exercise)
	for _, ex := range pool {
		byMuscle[ex.PrimaryMuscle] = append(byMuscle[ex.PrimaryMuscle], ex)
	}
	return byMuscle
}
