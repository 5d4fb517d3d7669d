// Package migrations embeds the Postgres schema files applied by cmd/migrate.
package migrations

import "embed"

// Files holds 000_drop_all.sql, 000_consolidated.sql and the numbered *.up.sql files.
//
//go:embed *.sql
var Files embed.FS
