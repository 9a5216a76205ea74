package scheduler

import _ "embed"

// fixtureJSON is the fixed input --test loads instead of generating
// truncated-normal random test data (out of scope, spec.md §1).
//
//go:embed testdata/fixture.json
var fixtureJSON []byte
