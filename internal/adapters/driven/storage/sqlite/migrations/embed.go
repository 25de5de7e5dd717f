// Package migrations carries the SQLite schema as embedded SQL files.
// Files are named NNN_description.up.sql and applied in ascending order
// by the store's migration runner.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
