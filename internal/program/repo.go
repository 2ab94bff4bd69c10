package program

import (
	"context"
	"errors"
	"fmt"

	"github.com/lvassor/train-server/internal/telemetry/tracing"
	"github.com/lvassor/train-server/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrProgramExists   = errors.New("program already exists")
)

// Repo persists generated programs.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, p *Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", p.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO program (program_id, user_id, split, total_weeks, warnings, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		p.ID, p.UserID, p.Split, p.TotalWeeks, p.Warnings, p.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrProgramExists
		}
		return fmt.Errorf("insert program: %w", err)
	}

	for _, session := range p.Sessions {
		var sessionID int64
		err = tx.QueryRow(
			ctx,
			`INSERT INTO program_session (program_id, name, day_index)
				VALUES ($1, $2, $3) RETURNING id;`,
			p.ID, session.Name, session.DayIndex,
		).Scan(&sessionID)
		if err != nil {
			return fmt.Errorf("insert session %q: %w", session.Name, err)
		}

		for pos, ex := range session.Exercises {
			_, err = tx.Exec(
				ctx,
				`INSERT INTO program_exercise
					(session_id, position, exercise_id, canonical_name, display_name,
					 primary_muscle, complexity, sets, rep_min, rep_max, rest_seconds)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
				sessionID, pos, ex.ExerciseID, ex.CanonicalName, ex.DisplayName,
				ex.PrimaryMuscle, ex.Complexity, ex.Sets, ex.Reps.Min, ex.Reps.Max, ex.RestSeconds,
			)
			if err != nil {
				return fmt.Errorf("insert exercise %s: %w", ex.CanonicalName, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", id))

	var p Program
	err = r.db.QueryRow(
		ctx,
		`SELECT program_id, user_id, split, total_weeks, warnings, created_at
			FROM program WHERE program_id = $1;`,
		id,
	).Scan(&p.ID, &p.UserID, &p.Split, &p.TotalWeeks, &p.Warnings, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProgramNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
			s.name, s.day_index,
			e.exercise_id, e.canonical_name, e.display_name, e.primary_muscle,
			e.complexity, e.sets, e.rep_min, e.rep_max, e.rest_seconds
		FROM program_session s
			LEFT JOIN program_exercise e ON e.session_id = s.id
		WHERE s.program_id = $1
		ORDER BY s.day_index, e.position;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessionIdx := make(map[int]int)
	for rows.Next() {
		var (
			name     string
			dayIndex int
			ex       AssignedExercise
			exID     *string
		)
		if err := rows.Scan(
			&name, &dayIndex,
			&exID, &ex.CanonicalName, &ex.DisplayName, &ex.PrimaryMuscle,
			&ex.Complexity, &ex.Sets, &ex.Reps.Min, &ex.Reps.Max, &ex.RestSeconds,
		); err != nil {
			return nil, err
		}

		idx, ok := sessionIdx[dayIndex]
		if !ok {
			idx = len(p.Sessions)
			sessionIdx[dayIndex] = idx
			p.Sessions = append(p.Sessions, Session{Name: name, DayIndex: dayIndex})
		}
		if exID != nil {
			ex.ExerciseID = *exID
			p.Sessions[idx].Exercises = append(p.Sessions[idx].Exercises, ex)
		}
	}

	return &p, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM program WHERE program_id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}

// SwapExercise replaces one assigned exercise in a stored program,
// identified by day index and current exercise id.
func (r *Repo) SwapExercise(ctx context.Context, programID string, dayIndex int, currentExerciseID string, replacement AssignedExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.swapExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))
	span.SetAttributes(attribute.String("exercise_id", currentExerciseID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE program_exercise e SET
			exercise_id = $1, canonical_name = $2, display_name = $3,
			primary_muscle = $4, complexity = $5
		FROM program_session s
		WHERE e.session_id = s.id
			AND s.program_id = $6 AND s.day_index = $7 AND e.exercise_id = $8;`,
		replacement.ExerciseID, replacement.CanonicalName, replacement.DisplayName,
		replacement.PrimaryMuscle, replacement.Complexity,
		programID, dayIndex, currentExerciseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}
