// Package validation binds request payloads and checks them against
// their struct tag rules.
//
// Failures are turned into errs.FieldError lists keyed by the wire name
// of each field, so the client sees "city is required" rather than a Go
// field path.
package validation
