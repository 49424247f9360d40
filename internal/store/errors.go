package store

import "errors"

var (
	// ErrLocked indicates another process holds the store lock in a
	// conflicting mode.
	ErrLocked = errors.New("listing store is locked by another process")
	// ErrReadOnly indicates a mutation was attempted on a store opened
	// with a shared lock.
	ErrReadOnly = errors.New("listing store is open read-only")
	// ErrPersistence indicates the snapshot rewrite failed; in-memory
	// state has been rolled back to match the file.
	ErrPersistence = errors.New("listing store persistence failed")
	// ErrSnapshot indicates the on-disk snapshot could not be read or does
	// not match the current template layout.
	ErrSnapshot = errors.New("listing snapshot is unreadable")
)
