// Package validation checks candidate listings before the store accepts
// them. Validation is pure and total: every rule runs, every failure is
// reported, and nothing is mutated. Callers get the complete list of
// problems in one pass rather than fixing them one rejection at a time.
package validation
