package migrations

import "embed"

// FS holds the versioned schema migrations in golang-migrate naming.
//
//go:embed *.sql
var FS embed.FS
