package lessons

import "embed"

// Sources holds the annotated lesson code, for printing alongside the
// lesson output.
//
//go:embed variables.go operators.go functions.go scope.go flow.go loops.go arrays.go classes.go pointers.go
var Sources embed.FS
