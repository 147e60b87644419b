// Package assert provides internal invariant assertions. The assertions
// (True, False, NotNil) panic on failure and compile to no-ops when the
// assertions_disabled build tag is set, so hot paths can carry structural
// checks without a release cost.
package assert
