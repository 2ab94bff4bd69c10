package workout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lvassor/train-server/internal/telemetry/metrics"
	"github.com/lvassor/train-server/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, variant workout.Variant) (*workout.Service, *MocklogStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMocklogStore(ctrl)
	service := workout.NewService(
		store,
		workout.NewEvaluator(variant),
		workout.NewDebouncer(20*time.Millisecond),
		metrics.NewTestManager(),
	)
	t.Cleanup(service.Close)
	return service, store
}

func TestService_LogSession(t *testing.T) {
	service, store := newTestService(t, workout.VariantDashboard)
	ctx := context.Background()

	store.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sl *workout.SessionLog) error {
			assert.NotEmpty(t, sl.ID)
			assert.False(t, sl.CreatedAt.IsZero())
			return nil
		})

	sl := &workout.SessionLog{
		ProgramID: "prog-1",
		UserID:    "user-1",
		Week:      2,
		DayIndex:  0,
	}
	require.NoError(t, service.LogSession(ctx, sl))
	assert.NotEmpty(t, sl.ID)

	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection lost"))
	err := service.LogSession(ctx, &workout.SessionLog{ProgramID: "prog-1", UserID: "user-1", Week: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store session log")
}

func TestService_Evaluate_withPreviousLog(t *testing.T) {
	service, store := newTestService(t, workout.VariantDashboard)
	ctx := context.Background()

	previous := &workout.ExerciseLog{
		ExerciseID: "ex001",
		Sets:       []workout.SetLog{{Reps: 8}, {Reps: 8}, {Reps: 8}},
	}
	store.EXPECT().
		PreviousExerciseLog(gomock.Any(), "prog-1", "ex001", 3).
		Return(previous, nil)

	feedback, err := service.Evaluate(ctx, "prog-1", 3, exerciseLog(8, 12, 9, 10, 11))
	require.NoError(t, err)
	assert.Equal(t, workout.TierConsistency, feedback.Tier)
	assert.Equal(t, 6, feedback.ExcessReps) // +1 +2 +3
}

func TestService_Evaluate_noPreviousLog(t *testing.T) {
	service, store := newTestService(t, workout.VariantDashboard)
	ctx := context.Background()

	store.EXPECT().
		PreviousExerciseLog(gomock.Any(), "prog-1", "ex001", 1).
		Return(nil, workout.ErrLogNotFound)

	feedback, err := service.Evaluate(ctx, "prog-1", 1, exerciseLog(8, 12, 13, 14, 13))
	require.NoError(t, err)
	assert.Equal(t, workout.TierProgression, feedback.Tier)
	assert.Zero(t, feedback.ExcessReps)
}

func TestService_Evaluate_storeError(t *testing.T) {
	service, store := newTestService(t, workout.VariantDashboard)
	ctx := context.Background()

	store.EXPECT().
		PreviousExerciseLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection lost"))

	_, err := service.Evaluate(ctx, "prog-1", 1, exerciseLog(8, 12, 9, 10, 11))
	assert.Error(t, err)
}

func TestService_ScheduleEvaluation_coalesces(t *testing.T) {
	service, store := newTestService(t, workout.VariantDashboard)
	ctx := context.Background()

	// only the final state of the burst reaches the store and the callback
	store.EXPECT().
		PreviousExerciseLog(gomock.Any(), "prog-1", "ex001", 2).
		Return(nil, workout.ErrLogNotFound).
		Times(1)

	var evaluations int32
	var lastTier atomic.Value
	onResult := func(f *workout.Feedback) {
		atomic.AddInt32(&evaluations, 1)
		lastTier.Store(f.Tier)
	}

	service.ScheduleEvaluation(ctx, "prog-1", 2, exerciseLog(8, 12, 13), onResult)
	service.ScheduleEvaluation(ctx, "prog-1", 2, exerciseLog(8, 12, 13, 14), onResult)
	service.ScheduleEvaluation(ctx, "prog-1", 2, exerciseLog(8, 12, 13, 14, 13), onResult)

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&evaluations) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, workout.TierProgression, lastTier.Load())
}
