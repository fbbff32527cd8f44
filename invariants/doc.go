// Package invariants gates contract assertions and deep self-checks behind
// the `invariants` build tag.
//
// In a default build Enabled is a constant false and every check guarded by
// it compiles away; contract violations then surface as whatever the Go
// runtime does at the faulting access (typically an index-out-of-range
// panic). Built with
//
//	go test -tags invariants ./...
//
// the same violations produce descriptive panics at the operation boundary,
// and mutating operations additionally verify structural invariants after
// the fact. The split keeps hot paths free of checks the caller has already
// paid for, while making misuse loud where it is cheap to be loud.
package invariants
