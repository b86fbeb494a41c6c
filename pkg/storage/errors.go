package storage

import "errors"

// Transaction misuse errors shared by all storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin when the handle is already
	// transactional. Nested transactions are not supported.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit/Rollback on a non-transactional handle.
	ErrNotInTx = errors.New("not in tx")
)
