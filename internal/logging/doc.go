// Package logging builds the slog loggers used across disclot.
//
// Two output formats are supported: a human-oriented console format
// (timestamp, level, component prefix, key=value attrs) and standard JSON.
// Components attach themselves with WithComponent so console lines read
// "store: snapshot rewritten records=3".
package logging
