package database

import (
	"context"
	"sync"
)

var (
	defaultOnce sync.Once
	defaultDB   *Database
	defaultErr  error
)

// Default opens the process-wide database at path on first use and returns
// the same handle afterwards; later paths are ignored. The handle lives for
// the rest of the process.
func Default(ctx context.Context, path string) (*Database, error) {
	defaultOnce.Do(func() {
		defaultDB, defaultErr = Open(ctx, path)
	})
	return defaultDB, defaultErr
}
