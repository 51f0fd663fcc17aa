package db

import "errors"

// Sentinel errors for store operations.
var (
	ErrKeyNotFound   = errors.New("db: key not found")
	ErrIndexNotFound = errors.New("db: index not found")
	ErrIndexExists   = errors.New("db: index already exists")
	ErrUnavailable   = errors.New("db: backend unavailable")
)

// Op names for error context.
const (
	OpPing        = "PING"
	OpIndexExists = "INDICES.EXISTS"
	OpCreateIndex = "INDICES.CREATE"
	OpRefresh     = "INDICES.REFRESH"
	OpIndex       = "INDEX"
	OpSearch      = "SEARCH"
	OpGet         = "GET"
	OpSet         = "SET"
	OpIncrBy      = "INCRBY"
	OpInsert      = "INSERT"
	OpSelect      = "SELECT"
	OpMigrate     = "MIGRATE"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
