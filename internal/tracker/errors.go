package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrCannotMove   = errors.New("item cannot move further")

	// errUnchanged lets a mutation skip the write.
	errUnchanged = errors.New("unchanged")
)

// StorageError reports a failed read or write. The operation it came from
// has either degraded to empty data or left the stored record unchanged.
type StorageError struct {
	Op   string
	Date string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Date != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Date, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err came from the store.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
