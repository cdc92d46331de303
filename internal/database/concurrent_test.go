package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

func TestConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := testutil.NewRecord(fmt.Sprintf("2024-02-%02d", i+1)).
				WithPriority("p", fmt.Sprintf("Title %d", i), models.StatusNeutral).
				Build()
			if err := db.Put(ctx, rec); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent put failed: %v", err)
	}
	if n, _ := db.Count(ctx); n != 10 {
		t.Fatalf("expected 10 records, got %d", n)
	}
}

func TestConcurrentPutsSameDateKeepOneRecord(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, dup int
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := testutil.NewRecord("2024-02-01").Build()
			rec.ID = fmt.Sprintf("rec-%d", i)
			err := db.Put(ctx, rec)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrDuplicateDate):
				dup++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if ok != 1 || dup != 7 {
		t.Fatalf("ok=%d dup=%d, want 1 and 7", ok, dup)
	}
	if n, _ := db.Count(ctx); n != 1 {
		t.Fatalf("expected 1 record, got %d", n)
	}
}
