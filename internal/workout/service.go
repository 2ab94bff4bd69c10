package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lvassor/train-server/internal/telemetry/metrics"
	"github.com/lvassor/train-server/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workout_test

type logStore interface {
	Insert(ctx context.Context, sl *SessionLog) error
	ListByProgramWeek(ctx context.Context, programID string, week int) ([]SessionLog, error)
	PreviousExerciseLog(ctx context.Context, programID, exerciseID string, beforeWeek int) (*ExerciseLog, error)
}

// Feedback is the evaluation result for one exercise log.
type Feedback struct {
	ExerciseID string `json:"exerciseId"`
	Tier       Tier   `json:"tier"`
	ExcessReps int    `json:"excessReps"`
}

// Service stores workout logs and turns them into progression feedback.
// Live set input goes through the debouncer so a burst of edits produces
// one evaluation.
type Service struct {
	store     logStore
	evaluator *Evaluator
	debouncer *Debouncer
	metrics   *metrics.Manager
}

func NewService(store logStore, evaluator *Evaluator, debouncer *Debouncer, metrics *metrics.Manager) *Service {
	return &Service{
		store:     store,
		evaluator: evaluator,
		debouncer: debouncer,
		metrics:   metrics,
	}
}

func (s *Service) LogSession(ctx context.Context, sl *SessionLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.logSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", sl.ProgramID))
	span.SetAttributes(attribute.Int("week", sl.Week))

	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}
	if sl.CreatedAt.IsZero() {
		sl.CreatedAt = time.Now()
	}

	if err := s.store.Insert(ctx, sl); err != nil {
		return fmt.Errorf("store session log: %w", err)
	}

	s.metrics.CounterSessionLogs.Inc()
	log.Debugf("stored session log %s: program %s week %d, %d exercises",
		sl.ID, sl.ProgramID, sl.Week, len(sl.Exercises))
	return nil
}

func (s *Service) ListWeek(ctx context.Context, programID string, week int) (_ []SessionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.listWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.ListByProgramWeek(ctx, programID, week)
}

// Evaluate classifies one exercise log and computes the excess reps
// against the user's previous log of the same exercise. No previous log
// simply means zero excess.
func (s *Service) Evaluate(ctx context.Context, programID string, week int, el ExerciseLog) (_ *Feedback, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", el.ExerciseID))

	feedback := &Feedback{
		ExerciseID: el.ExerciseID,
		Tier:       s.evaluator.Evaluate(el),
	}

	previous, err := s.store.PreviousExerciseLog(ctx, programID, el.ExerciseID, week)
	switch {
	case errors.Is(err, ErrLogNotFound):
		err = nil
	case err != nil:
		return nil, err
	default:
		feedback.ExcessReps = ExcessReps(el.Sets, previous.Sets)
	}

	s.metrics.CounterEvaluations.WithLabelValues(string(feedback.Tier)).Inc()
	return feedback, nil
}

// ScheduleEvaluation debounces live set input: each call replaces the
// pending evaluation for the same program/exercise slot, and onResult
// fires once the input settles. Errors are logged, not surfaced, since
// there is nobody left to surface them to.
func (s *Service) ScheduleEvaluation(
	ctx context.Context,
	programID string,
	week int,
	el ExerciseLog,
	onResult func(*Feedback),
) {
	key := fmt.Sprintf("%s/%d/%s", programID, week, el.ExerciseID)
	s.debouncer.Schedule(key, func() {
		feedback, err := s.Evaluate(ctx, programID, week, el)
		if err != nil {
			log.Errorf("debounced evaluation for %s: %s", key, err)
			return
		}
		if onResult != nil {
			onResult(feedback)
		}
	})
}

// Close stops the debouncer and waits for in-flight evaluations.
func (s *Service) Close() {
	s.debouncer.Stop()
}
