package database

import (
	"errors"
	"fmt"
)

var (
	ErrClosed            = errors.New("database is closed")
	ErrDatabaseCorrupted = errors.New("database file is corrupted")
	ErrDuplicateDate     = errors.New("a record already exists for this date")
	ErrWrongPassphrase   = errors.New("incorrect passphrase")
	ErrUnsupportedImport = errors.New("unrecognized import document")
)

const (
	EntityRecord  = "record"
	EntitySetting = "setting"
)

type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}
