// Package schema describes the marketplace bulk-upload template.
//
// The registry is the single source of truth for the template's column set:
// exact column names, required flags, value kinds, accepted value domains,
// and constant default literals. Column order is fixed and defines the
// column order of every exported file and of the persisted working snapshot.
//
// The data is immutable configuration; nothing mutates it after process
// start. Adding a column to the template is a one-line change to the
// registry table, and the projection layer picks it up automatically.
package schema
