package workout

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
	ErrLogNotFound  = errors.New("session log not found")
	ErrLogExists    = errors.New("session log already exists")
	ErrUnknownOwner = errors.New("session log program unknown")
)

// Repo persists workout session logs.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, sl *SessionLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_log_id", sl.ID))

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
		`INSERT INTO session_log (session_log_id, program_id, user_id, week, day_index, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		sl.ID, sl.ProgramID, sl.UserID, sl.Week, sl.DayIndex, sl.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrLogExists
		}
		if pkg.IsForeignKeyViolationError(err) {
			return ErrUnknownOwner
		}
		return fmt.Errorf("insert session log: %w", err)
	}

	for _, el := range sl.Exercises {
		var exerciseLogID int64
		err = tx.QueryRow(
			ctx,
			`INSERT INTO exercise_log
				(session_log_id, exercise_id, canonical_name, expected_sets, rep_min, rep_max, notes, completed)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
			sl.ID, el.ExerciseID, el.CanonicalName, el.ExpectedSets, el.RepMin, el.RepMax, el.Notes, el.Completed,
		).Scan(&exerciseLogID)
		if err != nil {
			return fmt.Errorf("insert exercise log %s: %w", el.CanonicalName, err)
		}

		for setIdx, s := range el.Sets {
			_, err = tx.Exec(
				ctx,
				`INSERT INTO set_log (exercise_log_id, set_index, reps, weight, completed)
					VALUES ($1, $2, $3, $4, $5);`,
				exerciseLogID, setIdx, s.Reps, s.Weight, s.Completed,
			)
			if err != nil {
				return fmt.Errorf("insert set log %s/%d: %w", el.CanonicalName, setIdx, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListByProgramWeek returns the session logs of one program week, oldest
// first.
func (r *Repo) ListByProgramWeek(ctx context.Context, programID string, week int) (_ []SessionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listByProgramWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))
	span.SetAttributes(attribute.Int("week", week))

	rows, err := r.db.Query(
		ctx,
		`SELECT session_log_id, program_id, user_id, week, day_index, created_at
			FROM session_log
			WHERE program_id = $1 AND week = $2
			ORDER BY created_at;`,
		programID, week,
	)
	if err != nil {
		return nil, fmt.Errorf("query session logs: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var logs []SessionLog
	for rows.Next() {
		var sl SessionLog
		if err := rows.Scan(&sl.ID, &sl.ProgramID, &sl.UserID, &sl.Week, &sl.DayIndex, &sl.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, sl)
	}

	for i := range logs {
		logs[i].Exercises, err = r.exerciseLogs(ctx, logs[i].ID)
		if err != nil {
			return nil, err
		}
	}
	if logs == nil {
		logs = make([]SessionLog, 0)
	}
	return logs, nil
}

// PreviousExerciseLog returns the most recent log of the given exercise
// before the given week, for excess rep comparison.
func (r *Repo) PreviousExerciseLog(ctx context.Context, programID, exerciseID string, beforeWeek int) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.previousExerciseLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	var exerciseLogID int64
	el := ExerciseLog{}
	err = r.db.QueryRow(
		ctx,
		`SELECT e.id, e.exercise_id, e.canonical_name, e.expected_sets, e.rep_min, e.rep_max, e.notes, e.completed
			FROM exercise_log e
				JOIN session_log s ON s.session_log_id = e.session_log_id
			WHERE s.program_id = $1 AND e.exercise_id = $2 AND s.week < $3
			ORDER BY s.week DESC, s.created_at DESC
			LIMIT 1;`,
		programID, exerciseID, beforeWeek,
	).Scan(&exerciseLogID, &el.ExerciseID, &el.CanonicalName, &el.ExpectedSets, &el.RepMin, &el.RepMax, &el.Notes, &el.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get previous exercise log: %w", err)
	}

	el.Sets, err = r.setLogs(ctx, exerciseLogID)
	if err != nil {
		return nil, err
	}
	return &el, nil
}

func (r *Repo) exerciseLogs(ctx context.Context, sessionLogID string) ([]ExerciseLog, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_id, canonical_name, expected_sets, rep_min, rep_max, notes, completed
			FROM exercise_log WHERE session_log_id = $1 ORDER BY id;`,
		sessionLogID,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercise logs: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var (
		logs []ExerciseLog
		ids  []int64
	)
	for rows.Next() {
		var (
			id int64
			el ExerciseLog
		)
		if err := rows.Scan(&id, &el.ExerciseID, &el.CanonicalName, &el.ExpectedSets, &el.RepMin, &el.RepMax, &el.Notes, &el.Completed); err != nil {
			return nil, err
		}
		logs = append(logs, el)
		ids = append(ids, id)
	}

	for i := range logs {
		logs[i].Sets, err = r.setLogs(ctx, ids[i])
		if err != nil {
			return nil, err
		}
	}
	return logs, nil
}

func (r *Repo) setLogs(ctx context.Context, exerciseLogID int64) ([]SetLog, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT reps, weight, completed FROM set_log WHERE exercise_log_id = $1 ORDER BY set_index;`,
		exerciseLogID,
	)
	if err != nil {
		return nil, fmt.Errorf("query set logs: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var sets []SetLog
	for rows.Next() {
		var s SetLog
		if err := rows.Scan(&s.Reps, &s.Weight, &s.Completed); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}
