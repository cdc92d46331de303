package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

var errDisk = errors.New("disk unavailable")

func newMockTracker(t *testing.T) (*MockStore, *Tracker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	clock := testutil.NewClock(time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC))
	tr := New(store, WithClock(clock.Now), WithIDs(testutil.NewSequentialIDs("id").Next))
	return store, tr
}

func TestValidationMakesNoStoreCalls(t *testing.T) {
	// No expectations: any store call fails the test.
	_, tr := newMockTracker(t)
	ctx := context.Background()

	_, _, err := tr.AddItem(ctx, "2024-01-03", models.ItemGoal, "")
	assert.ErrorIs(t, err, models.ErrInvalidTitle)
	_, err = tr.EditTitle(ctx, "2024-01-03", models.ItemPriority, "p", "   ")
	assert.ErrorIs(t, err, models.ErrInvalidTitle)
	_, _, err = tr.AddTimeSlot(ctx, "2024-01-03", "g", "25:00", "26:00")
	assert.ErrorIs(t, err, models.ErrInvalidTime)
	_, err = tr.GenerateAutoOverdueTasks(ctx, "yesterday")
	assert.ErrorIs(t, err, models.ErrInvalidDate)
}

func TestInvalidStatusMakesNoStoreCalls(t *testing.T) {
	_, tr := newMockTracker(t)
	ctx := context.Background()

	_, err := tr.CompleteOverdueTask(ctx, "2024-01-02", "o1", models.Status("bogus"))
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	_, err = tr.SetStatus(ctx, "2024-01-03", models.ItemGoal, "G1", "")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	_, err = tr.SetStatus(ctx, "2024-01-03", models.ItemOverdue, "o1", models.Status("finished"))
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestRecordDegradesToEmptyOnReadFailure(t *testing.T) {
	store, tr := newMockTracker(t)
	store.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(nil, errDisk)

	r, err := tr.Record(context.Background(), "2024-01-03")
	require.NotNil(t, r)
	assert.True(t, r.IsEmpty())
	assert.True(t, IsStorageError(err))
	assert.ErrorIs(t, err, errDisk)
}

func TestMutationDoesNotWriteAfterReadFailure(t *testing.T) {
	store, tr := newMockTracker(t)
	store.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(nil, errDisk)

	_, _, err := tr.AddItem(context.Background(), "2024-01-03", models.ItemGoal, "x")
	assert.True(t, IsStorageError(err))
}

func TestGenerationWithoutHistoryDerivesNothing(t *testing.T) {
	store, tr := newMockTracker(t)
	store.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(nil, nil)
	store.EXPECT().GetAll(gomock.Any()).Return(nil, errDisk)

	derived, err := tr.GenerateAutoOverdueTasks(context.Background(), "2024-01-03")
	assert.Empty(t, derived)
	assert.True(t, IsStorageError(err))
}

func TestGenerationWriteFailureIsReported(t *testing.T) {
	store, tr := newMockTracker(t)
	day1 := testutil.NewRecord("2024-01-01").WithGoal("g1", "a", models.StatusNeutral).Build()
	store.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(nil, nil)
	store.EXPECT().GetAll(gomock.Any()).Return([]*models.DailyRecord{day1}, nil)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errDisk)

	derived, err := tr.GenerateAutoOverdueTasks(context.Background(), "2024-01-03")
	assert.Nil(t, derived)
	assert.ErrorIs(t, err, errDisk)
}

func TestCompleteStillSavesTodayWhenHistoryUnavailable(t *testing.T) {
	store, tr := newMockTracker(t)
	today := testutil.NewRecord("2024-01-03").
		WithAutoTask("a1", "a", models.StatusNeutral, models.ReferenceKey{Date: "2024-01-01", Type: models.ItemGoal, ID: "g1"}).
		Build()
	store.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(today.Clone(), nil).Times(2)
	store.EXPECT().GetAll(gomock.Any()).Return(nil, errDisk)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.DailyRecord) error {
		assert.Equal(t, "2024-01-03", r.Date)
		assert.Equal(t, models.StatusDone, r.OverdueTasks[0].Status)
		return nil
	})

	r, err := tr.CompleteOverdueTask(context.Background(), "2024-01-03", "a1", models.StatusDone)
	require.NotNil(t, r)
	assert.True(t, IsStorageError(err))
}

func TestReconciliationWritesOriginBeforeToday(t *testing.T) {
	store, tr := newMockTracker(t)
	day1 := testutil.NewRecord("2024-01-01").WithGoal("g1", "a", models.StatusNeutral).Build()
	today := testutil.NewRecord("2024-01-03").
		WithAutoTask("a1", "a", models.StatusNeutral, models.ReferenceKey{Date: "2024-01-01", Type: models.ItemGoal, ID: "g1"}).
		Build()
	store.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(today.Clone(), nil).Times(2)
	store.EXPECT().GetAll(gomock.Any()).Return([]*models.DailyRecord{day1.Clone(), today.Clone()}, nil)
	gomock.InOrder(
		store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.DailyRecord) error {
			assert.Equal(t, "2024-01-01", r.Date)
			assert.Equal(t, models.StatusDone, r.Goals[0].Status)
			return nil
		}),
		store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.DailyRecord) error {
			assert.Equal(t, "2024-01-03", r.Date)
			return nil
		}),
	)

	_, err := tr.CompleteOverdueTask(context.Background(), "2024-01-03", "a1", models.StatusDone)
	require.NoError(t, err)
}
