// Package migrations embeds the run-history schema for the SQLite store.
package migrations

import "embed"

// FS holds the NNN_name.up.sql / .down.sql pairs, applied in file-name order.
//
//go:embed *.sql
var FS embed.FS
