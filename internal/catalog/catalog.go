package catalog

// Exercise is a single row of the exercise catalog. The catalog is owned by
// the content pipeline and is read-only from the engine's point of view.
type Exercise struct {
	ID              string  `json:"id"`
	CanonicalName   string  `json:"canonicalName"`
	DisplayName     string  `json:"displayName"`
	EquipmentID1    string  `json:"equipmentId1"`
	EquipmentID2    *string `json:"equipmentId2,omitempty"`
	ComplexityLevel int     `json:"complexityLevel"` // 1-4
	IsIsolation     bool    `json:"isIsolation"`
	PrimaryMuscle   string  `json:"primaryMuscle"`
	SecondaryMuscle *string `json:"secondaryMuscle,omitempty"`
	Rating          int     `json:"rating"` // 0-100
	InProgramme     bool    `json:"inProgramme"`
}

// EquipmentCategory resolves the exercise's primary equipment category
// through the given equipment index.
func (e Exercise) EquipmentCategory(equipment map[string]Equipment) string {
	if eq, ok := equipment[e.EquipmentID1]; ok {
		return eq.Category
	}
	return ""
}

// Equipment is one selectable equipment item. A category's "base" row has
// Name == Category and no parent; specific items point to the base row via
// ParentID.
type Equipment struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId,omitempty"`
}

// Contraindication marks a movement pattern as unsafe for an injury type.
type Contraindication struct {
	CanonicalName string `json:"canonicalName"`
	InjuryType    string `json:"injuryType"`
}

// QueryParams filters QueryExercises. Zero values mean "no filter", matching
// the optional-filter convention used by the SQL repo.
type QueryParams struct {
	// OwnedEquipmentIDs, when non-empty, keeps only exercises whose primary
	// equipment is owned and whose secondary equipment is absent or owned.
	OwnedEquipmentIDs map[string]bool

	// MaxComplexity, when > 0, drops exercises above this complexity level.
	// Isolation exercises are exempt from the ceiling.
	MaxComplexity int

	PrimaryMuscle string
	CanonicalName string

	// ExcludeInjuries drops exercises whose canonical name is contraindicated
	// for any of the given injury types.
	ExcludeInjuries []string

	ExcludeIDs map[string]bool

	OnlyProgramme bool
}
