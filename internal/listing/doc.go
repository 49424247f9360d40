// Package listing defines the in-memory model for one disc's candidate
// listing and the resolver that merges caller input with configured defaults.
//
// A Record is built by the Resolver from three layers: repository/config
// defaults, the caller's partial field set (metadata, pricing research,
// photo references), and an override map whose values pass through a fixed
// coercion table. Overrides that the table does not recognize fail with
// ErrUnrecognizedOverride; nothing falls back silently.
//
// Records produced here are unvalidated. The validation package decides
// whether a record may enter the store.
package listing
