package program

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lvassor/train-server/internal/catalog"
	"github.com/lvassor/train-server/internal/telemetry/metrics"
	"github.com/lvassor/train-server/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=program_test

type programStore interface {
	Insert(ctx context.Context, p *Program) error
	Get(ctx context.Context, id string) (*Program, error)
	Delete(ctx context.Context, id string) error
	SwapExercise(ctx context.Context, programID string, dayIndex int, currentExerciseID string, replacement AssignedExercise) error
}

// Service generates, stores and amends training programs.
type Service struct {
	catalog   Catalog
	store     programStore
	assembler *Assembler
	metrics   *metrics.Manager
}

func NewService(cat Catalog, store programStore, assembler *Assembler, metrics *metrics.Manager) *Service {
	return &Service{
		catalog:   cat,
		store:     store,
		assembler: assembler,
		metrics:   metrics,
	}
}

// Generate runs the whole pipeline for one profile: equipment eligibility,
// candidate pool, session assembly, validation, persistence. A failing
// catalog degrades to an empty pool so the user still gets a (bodyweight)
// program rather than an error.
func (s *Service) Generate(ctx context.Context, profile Profile) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.program.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("experience", string(profile.Experience)))
	span.SetAttributes(attribute.Int("days_per_week", profile.DaysPerWeek))

	started := time.Now()

	eligible, err := EligibleExercises(ctx, s.catalog, profile)
	if err != nil {
		log.Warnf("generate for %s: eligible exercises: %s", profile.UserID, err)
		eligible = nil
		err = nil
	}

	pool, err := BuildPool(ctx, s.catalog, eligible, profile.Experience, profile.Injuries)
	if err != nil {
		log.Warnf("generate for %s: build pool: %s", profile.UserID, err)
		pool = nil
		err = nil
	}

	p := s.assembler.Assemble(profile, pool)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("generated program invalid: %w", err)
	}

	if err := s.store.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("store program: %w", err)
	}

	s.metrics.CounterProgramsGenerated.Inc()
	s.metrics.HistGenerationDuration.Observe(time.Since(started).Seconds())
	log.Debugf(
		"generated program %s for %s: %s, %d sessions, %d warnings",
		p.ID, profile.UserID, p.Split, len(p.Sessions), len(p.Warnings),
	)

	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.program.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", id))

	return s.store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.program.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", id))

	return s.store.Delete(ctx, id)
}

// ListAlternatives rebuilds the user's candidate pool and ranks swap
// options for the given exercise.
func (s *Service) ListAlternatives(ctx context.Context, exerciseID string, profile Profile) (_ []catalog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.program.listAlternatives")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	current, err := s.catalog.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get current exercise: %w", err)
	}

	eligible, err := EligibleExercises(ctx, s.catalog, profile)
	if err != nil {
		return nil, err
	}
	pool, err := BuildPool(ctx, s.catalog, eligible, profile.Experience, profile.Injuries)
	if err != nil {
		return nil, err
	}

	equipment, err := s.catalog.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	s.metrics.CounterSwapsServed.Inc()
	return Alternatives(*current, pool, equipmentIndex(equipment)), nil
}

// ErrSwapNotAllowed means applying the swap would break the stored
// session's structural invariants.
var ErrSwapNotAllowed = errors.New("swap violates session constraints")

// ApplySwap swaps one assigned exercise of a stored program for the given
// replacement, carrying the original prescription over. The stored session
// keeps its invariants: no duplicate canonical names and at most one
// complexity-4 movement, at the opening position.
func (s *Service) ApplySwap(ctx context.Context, programID string, dayIndex int, currentExerciseID, replacementID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.program.applySwap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))

	replacement, err := s.catalog.GetExercise(ctx, replacementID)
	if err != nil {
		return fmt.Errorf("get replacement exercise: %w", err)
	}

	stored, err := s.store.Get(ctx, programID)
	if err != nil {
		return fmt.Errorf("get program: %w", err)
	}
	if err := checkSwap(stored, dayIndex, currentExerciseID, replacement); err != nil {
		return err
	}

	return s.store.SwapExercise(ctx, programID, dayIndex, currentExerciseID, AssignedExercise{
		ExerciseID:    replacement.ID,
		CanonicalName: replacement.CanonicalName,
		DisplayName:   replacement.DisplayName,
		PrimaryMuscle: replacement.PrimaryMuscle,
		Complexity:    replacement.ComplexityLevel,
	})
}

func checkSwap(p *Program, dayIndex int, currentExerciseID string, replacement *catalog.Exercise) error {
	var session *Session
	for i := range p.Sessions {
		if p.Sessions[i].DayIndex == dayIndex {
			session = &p.Sessions[i]
			break
		}
	}
	if session == nil {
		return ErrProgramNotFound
	}

	position := -1
	otherComplexity4 := false
	for i, ex := range session.Exercises {
		if ex.ExerciseID == currentExerciseID {
			position = i
			continue
		}
		if ex.CanonicalName == replacement.CanonicalName {
			return fmt.Errorf("%w: %s already assigned", ErrSwapNotAllowed, replacement.CanonicalName)
		}
		if ex.Complexity >= 4 {
			otherComplexity4 = true
		}
	}
	if position == -1 {
		return ErrProgramNotFound
	}

	if replacement.ComplexityLevel >= 4 {
		if otherComplexity4 {
			return fmt.Errorf("%w: session already has a complexity-4 movement", ErrSwapNotAllowed)
		}
		if position != 0 {
			return fmt.Errorf("%w: complexity-4 movement must open the session", ErrSwapNotAllowed)
		}
	}
	return nil
}
