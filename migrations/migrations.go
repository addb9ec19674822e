// Package migrations embeds the SQL schema for the Postgres resume store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
