// Package coursefile parses and validates YAML course definitions used by
// the create/update commands. Validation runs against an embedded JSON
// schema before anything is sent to the backend, so authors get field-level
// errors instead of a rejected request.
package coursefile
