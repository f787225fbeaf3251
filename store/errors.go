package store

import (
	"errors"
	"fmt"
)

// ErrorKind classifies store failures.
type ErrorKind int

const (
	// KindConnection covers failures opening or reaching the backend.
	KindConnection ErrorKind = iota

	// KindQuery covers failed reads and writes.
	KindQuery

	// KindNotFound covers lookups for records that do not exist.
	KindNotFound

	// KindConflict covers writes that collide with an existing record.
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// StoreError is the error type all store operations return.
type StoreError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store %s error: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("store %s error: %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *StoreError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a StoreError of kind KindNotFound.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsConflict reports whether err is a StoreError of kind KindConflict.
func IsConflict(err error) bool {
	return hasKind(err, KindConflict)
}

func hasKind(err error, kind ErrorKind) bool {
	var se *StoreError
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == kind
}

func notFound(id string) *StoreError {
	return &StoreError{Kind: KindNotFound, Msg: "record " + id}
}

func conflict(id string) *StoreError {
	return &StoreError{Kind: KindConflict, Msg: "record " + id + " already exists"}
}

func queryErr(msg string, err error) *StoreError {
	return &StoreError{Kind: KindQuery, Msg: msg, Err: err}
}

func connectionErr(msg string, err error) *StoreError {
	return &StoreError{Kind: KindConnection, Msg: msg, Err: err}
}
