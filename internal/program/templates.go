package program

// Slot asks the assembler for Count exercises whose primary muscle is
// Muscle.
type Slot struct {
	Muscle string
	Count  int
}

// SessionTemplate is the shape of one training day before exercises are
// picked into it.
type SessionTemplate struct {
	Name  string
	Slots []Slot
}

func fullBodyTemplate(name string) SessionTemplate {
	return SessionTemplate{
		Name: name,
		Slots: []Slot{
			{Muscle: "quads", Count: 1},
			{Muscle: "hamstrings", Count: 1},
			{Muscle: "chest", Count: 1},
			{Muscle: "back", Count: 1},
			{Muscle: "shoulders", Count: 1},
			{Muscle: "core", Count: 1},
		},
	}
}

func upperTemplate(name string) SessionTemplate {
	return SessionTemplate{
		Name: name,
		Slots: []Slot{
			{Muscle: "chest", Count: 2},
			{Muscle: "back", Count: 2},
			{Muscle: "shoulders", Count: 1},
			{Muscle: "biceps", Count: 1},
			{Muscle: "triceps", Count: 1},
		},
	}
}

func lowerTemplate(name string) SessionTemplate {
	return SessionTemplate{
		Name: name,
		Slots: []Slot{
			{Muscle: "quads", Count: 2},
			{Muscle: "hamstrings", Count: 2},
			{Muscle: "glutes", Count: 1},
			{Muscle: "calves", Count: 1},
			{Muscle: "core", Count: 1},
		},
	}
}

func pushTemplate() SessionTemplate {
	return SessionTemplate{
		Name: "Push",
		Slots: []Slot{
			{Muscle: "chest", Count: 2},
			{Muscle: "shoulders", Count: 2},
			{Muscle: "triceps", Count: 2},
		},
	}
}

func pullTemplate() SessionTemplate {
	return SessionTemplate{
		Name: "Pull",
		Slots: []Slot{
			{Muscle: "back", Count: 3},
			{Muscle: "biceps", Count: 2},
			{Muscle: "core", Count: 1},
		},
	}
}

func legsTemplate() SessionTemplate {
	return SessionTemplate{
		Name: "Legs",
		Slots: []Slot{
			{Muscle: "quads", Count: 2},
			{Muscle: "hamstrings", Count: 2},
			{Muscle: "glutes", Count: 1},
			{Muscle: "calves", Count: 1},
		},
	}
}

// WeekTemplates returns the ordered session templates for one training
// week of the given split and frequency.
func WeekTemplates(split Split, days int) []SessionTemplate {
	switch split {
	case SplitFullBody:
		if days <= 1 {
			return []SessionTemplate{fullBodyTemplate("Full Body")}
		}
		return []SessionTemplate{
			fullBodyTemplate("Full Body A"),
			fullBodyTemplate("Full Body B"),
		}
	case SplitUpperLower:
		if days >= 4 {
			return []SessionTemplate{
				upperTemplate("Upper A"),
				lowerTemplate("Lower A"),
				upperTemplate("Upper B"),
				lowerTemplate("Lower B"),
			}
		}
		return []SessionTemplate{
			upperTemplate("Upper"),
			lowerTemplate("Lower"),
		}
	case SplitHybrid:
		return []SessionTemplate{
			pushTemplate(),
			pullTemplate(),
			legsTemplate(),
			upperTemplate("Upper"),
			lowerTemplate("Lower"),
		}
	default: // push/pull/legs
		templates := []SessionTemplate{
			pushTemplate(),
			pullTemplate(),
			legsTemplate(),
		}
		if days >= 6 {
			templates = append(templates, pushTemplate(), pullTemplate(), legsTemplate())
		}
		return templates
	}
}

// prioritized bumps the slot count of each target muscle by one. Muscles
// absent from the template are left alone, target focus never reshapes the
// split.
func prioritized(tmpl SessionTemplate, targets []string) SessionTemplate {
	if len(targets) == 0 {
		return tmpl
	}
	targetSet := make(map[string]bool, len(targets))
	for _, m := range targets {
		targetSet[m] = true
	}

	slots := make([]Slot, len(tmpl.Slots))
	copy(slots, tmpl.Slots)
	for i := range slots {
		if targetSet[slots[i].Muscle] {
			slots[i].Count++
		}
	}
	tmpl.Slots = slots
	return tmpl
}
