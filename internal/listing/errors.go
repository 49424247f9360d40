package listing

import "errors"

// ErrUnrecognizedOverride marks override values outside the coercion tables.
// The caller must resend with a recognized value; the resolver never falls
// back to a default silently.
var ErrUnrecognizedOverride = errors.New("unrecognized override")
