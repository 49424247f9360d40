// Command disclot accumulates Blu-ray listings and exports them as a
// marketplace bulk-upload CSV.
package main
