// Package store holds the ordered set of accepted listings and keeps it
// crash-safe on disk.
//
// The persisted form is a full snapshot in the export row format, so the
// working file is itself a valid upload file at every moment. Every mutation
// rewrites the whole snapshot through a temp-file rename; a failed rewrite
// rolls the in-memory state back, so memory and disk never disagree.
//
// A flock on a sidecar lock file fences concurrent processes: writers take
// the lock exclusively, readers share it.
package store
