// Package migrations holds the goose SQL migrations that own the database schema.
package migrations

import "embed"

// FS contains every *.sql migration, applied in version order by goose.
//
//go:embed *.sql
var FS embed.FS
