package catalog

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// Fixture returns a small but realistic catalog used by tests and by the
// in-memory mode of the service. Equipment follows the base-row convention:
// each category has one row whose name equals the category, and concrete
// items point back to it via ParentID.
func Fixture() ([]Exercise, []Equipment, []Contraindication) {
	return fixtureExercises(), FixtureEquipment(), fixtureContraindications()
}

func FixtureEquipment() []Equipment {
	base := func(category string) Equipment {
		return Equipment{ID: "eq_" + category, Category: category, Name: category}
	}
	item := func(category, name string) Equipment {
		parent := "eq_" + category
		return Equipment{ID: "eq_" + name, Category: category, Name: name, ParentID: &parent}
	}
	return []Equipment{
		base("bodyweight"),
		base("barbell"),
		item("barbell", "olympic_barbell"),
		item("barbell", "ez_bar"),
		base("dumbbell"),
		item("dumbbell", "adjustable_dumbbell"),
		base("machine"),
		item("machine", "leg_press_machine"),
		item("machine", "lat_pulldown_machine"),
		base("cable"),
		base("kettlebell"),
		base("bench"),
		item("bench", "incline_bench"),
		base("pullup_bar"),
		base("band"),
	}
}

func fixtureExercises() []Exercise {
	str := func(s string) *string { return &s }
	ex := func(id, canonical, display, eq1 string, eq2 *string, complexity int, isolation bool, primary string, secondary *string, rating int) Exercise {
		return Exercise{
			ID:              id,
			CanonicalName:   canonical,
			DisplayName:     display,
			EquipmentID1:    eq1,
			EquipmentID2:    eq2,
			ComplexityLevel: complexity,
			IsIsolation:     isolation,
			PrimaryMuscle:   primary,
			SecondaryMuscle: secondary,
			Rating:          rating,
			InProgramme:     true,
		}
	}

	return []Exercise{
		// chest
		ex("ex001", "barbell_bench_press", "Barbell Bench Press", "eq_barbell", str("eq_bench"), 3, false, "chest", str("triceps"), 92),
		ex("ex002", "dumbbell_bench_press", "Dumbbell Bench Press", "eq_dumbbell", str("eq_bench"), 2, false, "chest", str("triceps"), 88),
		ex("ex003", "incline_dumbbell_press", "Incline Dumbbell Press", "eq_dumbbell", str("eq_incline_bench"), 2, false, "chest", str("shoulders"), 84),
		ex("ex004", "push_up", "Push Up", "eq_bodyweight", nil, 1, false, "chest", str("triceps"), 70),
		ex("ex005", "cable_fly", "Cable Fly", "eq_cable", nil, 2, true, "chest", nil, 72),
		ex("ex006", "machine_chest_press", "Machine Chest Press", "eq_machine", nil, 1, false, "chest", str("triceps"), 75),

		// back
		ex("ex010", "barbell_row", "Barbell Row", "eq_barbell", nil, 3, false, "back", str("biceps"), 90),
		ex("ex011", "dumbbell_row", "Dumbbell Row", "eq_dumbbell", str("eq_bench"), 2, false, "back", str("biceps"), 85),
		ex("ex012", "pull_up", "Pull Up", "eq_pullup_bar", nil, 3, false, "back", str("biceps"), 91),
		ex("ex013", "lat_pulldown", "Lat Pulldown", "eq_lat_pulldown_machine", nil, 1, false, "back", str("biceps"), 82),
		ex("ex014", "seated_cable_row", "Seated Cable Row", "eq_cable", nil, 1, false, "back", str("biceps"), 80),
		ex("ex015", "deadlift", "Deadlift", "eq_barbell", nil, 4, false, "back", str("hamstrings"), 95),

		// shoulders
		ex("ex020", "overhead_press", "Overhead Press", "eq_barbell", nil, 3, false, "shoulders", str("triceps"), 89),
		ex("ex021", "dumbbell_shoulder_press", "Dumbbell Shoulder Press", "eq_dumbbell", nil, 2, false, "shoulders", str("triceps"), 84),
		ex("ex022", "lateral_raise", "Lateral Raise", "eq_dumbbell", nil, 1, true, "shoulders", nil, 74),
		ex("ex023", "cable_lateral_raise", "Cable Lateral Raise", "eq_cable", nil, 2, true, "shoulders", nil, 68),
		ex("ex024", "pike_push_up", "Pike Push Up", "eq_bodyweight", nil, 2, false, "shoulders", str("triceps"), 62),

		// quads
		ex("ex030", "barbell_back_squat", "Barbell Back Squat", "eq_barbell", nil, 4, false, "quads", str("glutes"), 96),
		ex("ex031", "goblet_squat", "Goblet Squat", "eq_dumbbell", nil, 2, false, "quads", str("glutes"), 81),
		ex("ex032", "leg_press", "Leg Press", "eq_leg_press_machine", nil, 1, false, "quads", str("glutes"), 83),
		ex("ex033", "bodyweight_squat", "Bodyweight Squat", "eq_bodyweight", nil, 1, false, "quads", str("glutes"), 60),
		ex("ex034", "bulgarian_split_squat", "Bulgarian Split Squat", "eq_dumbbell", str("eq_bench"), 3, false, "quads", str("glutes"), 86),
		ex("ex035", "leg_extension", "Leg Extension", "eq_machine", nil, 1, true, "quads", nil, 70),

		// hamstrings
		ex("ex040", "romanian_deadlift", "Romanian Deadlift", "eq_barbell", nil, 3, false, "hamstrings", str("glutes"), 91),
		ex("ex041", "dumbbell_romanian_deadlift", "Dumbbell Romanian Deadlift", "eq_dumbbell", nil, 2, false, "hamstrings", str("glutes"), 84),
		ex("ex042", "leg_curl", "Leg Curl", "eq_machine", nil, 1, true, "hamstrings", nil, 76),
		ex("ex043", "nordic_curl", "Nordic Curl", "eq_bodyweight", nil, 4, false, "hamstrings", nil, 78),

		// glutes
		ex("ex050", "barbell_hip_thrust", "Barbell Hip Thrust", "eq_barbell", str("eq_bench"), 2, false, "glutes", str("hamstrings"), 90),
		ex("ex051", "glute_bridge", "Glute Bridge", "eq_bodyweight", nil, 1, false, "glutes", str("hamstrings"), 66),
		ex("ex052", "cable_kickback", "Cable Kickback", "eq_cable", nil, 1, true, "glutes", nil, 64),
		ex("ex053", "kettlebell_swing", "Kettlebell Swing", "eq_kettlebell", nil, 3, false, "glutes", str("hamstrings"), 82),

		// biceps
		ex("ex060", "barbell_curl", "Barbell Curl", "eq_ez_bar", nil, 1, true, "biceps", nil, 80),
		ex("ex061", "dumbbell_curl", "Dumbbell Curl", "eq_dumbbell", nil, 1, true, "biceps", nil, 78),
		ex("ex062", "cable_curl", "Cable Curl", "eq_cable", nil, 1, true, "biceps", nil, 72),
		ex("ex063", "chin_up", "Chin Up", "eq_pullup_bar", nil, 3, false, "biceps", str("back"), 87),

		// triceps
		ex("ex070", "cable_pushdown", "Cable Pushdown", "eq_cable", nil, 1, true, "triceps", nil, 79),
		ex("ex071", "skull_crusher", "Skull Crusher", "eq_ez_bar", str("eq_bench"), 2, true, "triceps", nil, 81),
		ex("ex072", "close_grip_bench_press", "Close Grip Bench Press", "eq_barbell", str("eq_bench"), 3, false, "triceps", str("chest"), 85),
		ex("ex073", "bench_dip", "Bench Dip", "eq_bodyweight", str("eq_bench"), 1, false, "triceps", str("chest"), 65),

		// core
		ex("ex080", "plank", "Plank", "eq_bodyweight", nil, 1, false, "core", nil, 68),
		ex("ex081", "hanging_leg_raise", "Hanging Leg Raise", "eq_pullup_bar", nil, 3, false, "core", nil, 77),
		ex("ex082", "cable_crunch", "Cable Crunch", "eq_cable", nil, 1, true, "core", nil, 71),
		ex("ex083", "ab_wheel_rollout", "Ab Wheel Rollout", "eq_bodyweight", nil, 3, false, "core", nil, 74),

		// calves
		ex("ex090", "standing_calf_raise", "Standing Calf Raise", "eq_machine", nil, 1, true, "calves", nil, 69),
		ex("ex091", "single_leg_calf_raise", "Single Leg Calf Raise", "eq_bodyweight", nil, 1, true, "calves", nil, 58),
	}
}

func fixtureContraindications() []Contraindication {
	return []Contraindication{
		{CanonicalName: "barbell_back_squat", InjuryType: "knee"},
		{CanonicalName: "bulgarian_split_squat", InjuryType: "knee"},
		{CanonicalName: "leg_extension", InjuryType: "knee"},
		{CanonicalName: "deadlift", InjuryType: "lower_back"},
		{CanonicalName: "romanian_deadlift", InjuryType: "lower_back"},
		{CanonicalName: "barbell_row", InjuryType: "lower_back"},
		{CanonicalName: "overhead_press", InjuryType: "shoulder"},
		{CanonicalName: "barbell_bench_press", InjuryType: "shoulder"},
		{CanonicalName: "lateral_raise", InjuryType: "shoulder"},
	}
}

// RandomExercises generates n synthetic catalog rows from the given faker.
// Useful for bulk coverage tests where the exact movements do not matter.
func RandomExercises(faker *gofakeit.Faker, n int) []Exercise {
	muscles := []string{"chest", "back", "shoulders", "quads", "hamstrings", "glutes", "biceps", "triceps", "core", "calves"}
	equipmentIDs := []string{"eq_bodyweight", "eq_barbell", "eq_dumbbell", "eq_machine", "eq_cable", "eq_kettlebell"}

	exercises := make([]Exercise, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s_%s_%d", faker.Verb(), faker.NounConcrete(), i)
		e := Exercise{
			ID:              fmt.Sprintf("gen%04d", i),
			CanonicalName:   name,
			DisplayName:     name,
			EquipmentID1:    equipmentIDs[faker.IntRange(0, len(equipmentIDs)-1)],
			ComplexityLevel: faker.IntRange(1, 4),
			IsIsolation:     faker.Bool(),
			PrimaryMuscle:   muscles[faker.IntRange(0, len(muscles)-1)],
			Rating:          faker.IntRange(40, 100),
			InProgramme:     true,
		}
		if faker.Bool() {
			eq2 := "eq_bench"
			e.EquipmentID2 = &eq2
		}
		exercises = append(exercises, e)
	}
	return exercises
}
