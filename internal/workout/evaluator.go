package workout

// Tier is the progression verdict for one exercise log.
type Tier string

const (
	TierPending     Tier = "pending"
	TierRegression  Tier = "regression"
	TierConsistency Tier = "consistency"
	TierProgression Tier = "progression"
)

// Variant selects which evaluation rules apply.
type Variant string

const (
	// VariantDashboard evaluates as soon as three sets are in: the first
	// two sets decide regression and progression, the third only has to
	// clear the minimum. This is what live set input uses.
	VariantDashboard Variant = "dashboard"

	// VariantFullSession waits for every expected set and requires all of
	// them at the top of the range for progression. Used when a whole
	// session log is submitted at once.
	VariantFullSession Variant = "full_session"
)

func ParseVariant(raw string) (Variant, bool) {
	switch Variant(raw) {
	case VariantDashboard:
		return VariantDashboard, true
	case VariantFullSession:
		return VariantFullSession, true
	default:
		return "", false
	}
}

// dashboardMinSets is how many performed sets the dashboard variant needs
// before it gives a verdict.
const dashboardMinSets = 3

// Evaluator classifies exercise logs into progression tiers. Evaluation is
// pure: the same log always yields the same tier.
type Evaluator struct {
	variant Variant
}

func NewEvaluator(variant Variant) *Evaluator {
	return &Evaluator{variant: variant}
}

// Evaluate returns the tier for the given log. TierPending means the log
// does not have enough performed sets to judge yet.
func (e *Evaluator) Evaluate(el ExerciseLog) Tier {
	if el.RepMin <= 0 || el.RepMax < el.RepMin {
		return TierPending
	}

	switch e.variant {
	case VariantFullSession:
		return evaluateFullSession(el)
	default:
		return evaluateDashboard(el)
	}
}

func evaluateDashboard(el ExerciseLog) Tier {
	if el.performedSetCount() < dashboardMinSets {
		return TierPending
	}

	sets := performedSets(el)
	if sets[0].Reps < el.RepMin || sets[1].Reps < el.RepMin {
		return TierRegression
	}
	if sets[0].Reps >= el.RepMax && sets[1].Reps >= el.RepMax && sets[2].Reps >= el.RepMin {
		return TierProgression
	}
	return TierConsistency
}

func evaluateFullSession(el ExerciseLog) Tier {
	expected := el.ExpectedSets
	if expected <= 0 {
		expected = dashboardMinSets
	}
	if el.performedSetCount() < expected {
		return TierPending
	}

	// the opening sets decide regression; fewer than two performed sets
	// means fewer opening sets to check
	sets := performedSets(el)
	for i, s := range sets {
		if i >= 2 {
			break
		}
		if s.Reps < el.RepMin {
			return TierRegression
		}
	}
	for _, s := range sets {
		if s.Reps < el.RepMax {
			return TierConsistency
		}
	}
	return TierProgression
}

func performedSets(el ExerciseLog) []SetLog {
	sets := make([]SetLog, 0, len(el.Sets))
	for _, s := range el.Sets {
		if s.Reps > 0 {
			sets = append(sets, s)
		}
	}
	return sets
}

// ExcessReps sums the positive per-set rep gains of current over previous.
// Sets without a counterpart in the previous log contribute nothing.
func ExcessReps(current, previous []SetLog) int {
	excess := 0
	for i := 0; i < len(current) && i < len(previous); i++ {
		if gain := current[i].Reps - previous[i].Reps; gain > 0 {
			excess += gain
		}
	}
	return excess
}
