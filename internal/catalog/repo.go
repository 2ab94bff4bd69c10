package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lvassor/train-server/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
)

// Repo is the SQL implementation of the catalog query contract.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func ownedToSlice(owned map[string]bool) []string {
	ids := make([]string, 0, len(owned))
	for id := range owned {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// QueryExercises returns all catalog exercises matching the given params.
// All filters are optional; an empty QueryParams returns the whole catalog.
func (r *Repo) QueryExercises(ctx context.Context, params QueryParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.queryExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("primary_muscle", params.PrimaryMuscle))
	span.SetAttributes(attribute.Int("max_complexity", params.MaxComplexity))
	span.SetAttributes(attribute.Int("owned_equipment", len(params.OwnedEquipmentIDs)))

	ownedIDs := ownedToSlice(params.OwnedEquipmentIDs)
	excludeIDs := ownedToSlice(params.ExcludeIDs)
	injuries := params.ExcludeInjuries
	if injuries == nil {
		injuries = []string{}
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.exercise_id, e.canonical_name, e.display_name,
				e.equipment_id_1, e.equipment_id_2,
				e.complexity_level, e.is_isolation,
				e.primary_muscle, e.secondary_muscle,
				e.rating, e.is_in_programme
			FROM exercise e
				WHERE ($1::boolean IS FALSE OR e.is_in_programme)
				AND ($2::text = '' OR e.primary_muscle = $2)
				AND ($3::text = '' OR e.canonical_name = $3)
				AND (cardinality($4::text[]) = 0 OR (
					e.equipment_id_1 = ANY($4)
					AND (e.equipment_id_2 IS NULL OR e.equipment_id_2 = ANY($4))
				))
				AND ($5::int = 0 OR e.is_isolation OR e.complexity_level <= $5)
				AND (cardinality($6::text[]) = 0 OR NOT EXISTS (
					SELECT 1 FROM exercise_contraindication c
					WHERE c.canonical_name = e.canonical_name
					AND c.injury_type = ANY($6)
				))
				AND (cardinality($7::text[]) = 0 OR NOT (e.exercise_id = ANY($7)))
			ORDER BY e.complexity_level DESC, e.display_name;`,
		params.OnlyProgramme, params.PrimaryMuscle, params.CanonicalName,
		ownedIDs, params.MaxComplexity, injuries, excludeIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2exercises(rows)
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.exercise_id, e.canonical_name, e.display_name,
				e.equipment_id_1, e.equipment_id_2,
				e.complexity_level, e.is_isolation,
				e.primary_muscle, e.secondary_muscle,
				e.rating, e.is_in_programme
			FROM exercise e
			WHERE e.exercise_id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &exercises[0], nil
}

func (r *Repo) GetEquipment(ctx context.Context, id string) (_ *Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getEquipment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("equipment_id", id))

	var eq Equipment
	err = r.db.QueryRow(
		ctx,
		`SELECT equipment_id, category, name, parent_id FROM equipment WHERE equipment_id = $1;`,
		id,
	).Scan(&eq.ID, &eq.Category, &eq.Name, &eq.ParentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

func (r *Repo) ListEquipment(ctx context.Context) (_ []Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listEquipment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT equipment_id, category, name, parent_id FROM equipment ORDER BY equipment_id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var equipment []Equipment
	for rows.Next() {
		var eq Equipment
		if err := rows.Scan(&eq.ID, &eq.Category, &eq.Name, &eq.ParentID); err != nil {
			return nil, err
		}
		equipment = append(equipment, eq)
	}
	if equipment == nil {
		equipment = make([]Equipment, 0)
	}
	return equipment, nil
}

// ContraindicatedCanonicals returns the distinct canonical names that are
// unsafe for any of the given injury types.
func (r *Repo) ContraindicatedCanonicals(ctx context.Context, injuries []string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.contraindicated")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("injuries", len(injuries)))

	if len(injuries) == 0 {
		return []string{}, nil
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT DISTINCT canonical_name
			FROM exercise_contraindication
			WHERE injury_type = ANY($1)
			ORDER BY canonical_name;`,
		injuries,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var canonicals []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		canonicals = append(canonicals, name)
	}
	if canonicals == nil {
		canonicals = []string{}
	}
	return canonicals, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.CanonicalName, &e.DisplayName,
			&e.EquipmentID1, &e.EquipmentID2,
			&e.ComplexityLevel, &e.IsIsolation,
			&e.PrimaryMuscle, &e.SecondaryMuscle,
			&e.Rating, &e.InProgramme,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}
	return exercises, nil
}
