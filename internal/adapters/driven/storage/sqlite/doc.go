// Package sqlite provides the SQLite implementation of driven.RunStore.
//
// It uses modernc.org/sqlite, so the binary stays CGO-free.
//
// # Schema
//
// Versioned migrations live in migrations/ as .up.sql/.down.sql pairs and are
// applied at open, each inside its own transaction together with its
// schema_migrations row. One table, runs, holds the history; evaluation
// metrics are stored as a JSON column and timestamps as UTC DATETIME.
//
// # Data Location
//
// By default, the database is stored at ~/.cleanhub/data/runs.db. The
// runs.db_dir config key moves it.
//
// # Concurrency
//
// The database is opened in WAL mode, so `cleanhub runs` can read while a
// pipeline command is recording.
package sqlite
