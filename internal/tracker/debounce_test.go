package tracker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	var last atomic.Value
	for i := 0; i < 5; i++ {
		v := i
		d.Trigger("k", func() {
			atomic.AddInt32(&calls, 1)
			last.Store(v)
		})
	}
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 4, last.Load())
	assert.False(t, d.Pending("k"))
}

func TestDebouncerCancelAndFlush(t *testing.T) {
	d := NewDebouncer(time.Hour)
	var ran []string
	var mu sync.Mutex
	record := func(s string) func() {
		return func() {
			mu.Lock()
			ran = append(ran, s)
			mu.Unlock()
		}
	}
	d.Trigger("a", record("a"))
	d.Trigger("b", record("b"))
	d.Cancel("a")
	assert.False(t, d.Pending("a"))
	assert.True(t, d.Pending("b"))

	d.Flush()
	assert.Equal(t, []string{"b"}, ran)
	assert.False(t, d.Pending("b"))

	d.Trigger("c", record("c"))
	d.Stop()
	d.Flush()
	assert.Equal(t, []string{"b"}, ran)
}

func TestScheduleJournalSavesAfterQuietPeriod(t *testing.T) {
	f := newFixture(t)
	done := make(chan *models.DailyRecord, 1)

	f.tracker.ScheduleJournal("2024-01-03", "draft", nil)
	f.tracker.ScheduleJournal("2024-01-03", "final words here", func(r *models.DailyRecord, err error) {
		assert.NoError(t, err)
		done <- r
	})
	assert.True(t, f.tracker.JournalPending("2024-01-03"))

	select {
	case r := <-done:
		assert.Equal(t, "final words here", r.Journal.Content)
		assert.Equal(t, 3, r.Journal.WordCount)
	case <-time.After(time.Second):
		t.Fatalf("journal save never ran")
	}
	assert.Len(t, f.store.Puts, 1)
}

func TestCancelJournalDropsPendingSave(t *testing.T) {
	f := newFixture(t)
	f.tracker.ScheduleJournal("2024-01-03", "never saved", nil)
	f.tracker.CancelJournal("2024-01-03")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, f.store.Puts)
}

func TestFlushJournalWritesNow(t *testing.T) {
	f := newFixture(t)
	f.tracker.ScheduleJournal("2024-01-03", "now", nil)
	f.tracker.FlushJournal("2024-01-03")
	assert.Equal(t, "now", f.store.Record("2024-01-03").Journal.Content)

	_, err := f.tracker.SetJournal(context.Background(), "2024-01-03", "now")
	require.NoError(t, err)
	assert.Len(t, f.store.Puts, 1, "unchanged journal is not rewritten")
}

func TestDateLocksOrderAndDedup(t *testing.T) {
	l := newDateLocks()
	unlock := l.lock("2024-01-03", "2024-01-01", "2024-01-03", "")
	assert.Len(t, l.m, 2)
	unlock()

	// Opposite argument order must not deadlock.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); l.lock("a", "b")() }()
		go func() { defer wg.Done(); l.lock("b", "a")() }()
	}
	finished := make(chan struct{})
	go func() { wg.Wait(); close(finished) }()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("lock ordering deadlocked")
	}
}

func TestConcurrentMutationsOnOneDay(t *testing.T) {
	f := newFixture(t, testutil.NewRecord("2024-01-03").Build())
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := f.tracker.AddItem(context.Background(), "2024-01-03", models.ItemPriority, "p")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, f.store.Record("2024-01-03").Priorities, 20)
}
