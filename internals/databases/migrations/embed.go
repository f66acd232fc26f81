// Package migrations menyimpan file SQL skema (goose) di dalam binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
