package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// errCritical marks errors the repeater must not retry
var errCritical = errors.New("critical database error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// classify returns lock errors as is, so the repeater retries them, and wraps everything else as critical
func classify(err error) error {
	if err == nil || isLockError(err) {
		return err
	}
	return &criticalError{err: err}
}

// newRetrier makes the backoff repeater used for writes
func newRetrier() *repeater.Repeater {
	return repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
}

// stringsSQL is a JSON array of strings for SQL operations
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value interface{}) error {
	if value == nil {
		*s = stringsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*s = stringsSQL{}
		return nil
	}

	return json.Unmarshal(data, s)
}
