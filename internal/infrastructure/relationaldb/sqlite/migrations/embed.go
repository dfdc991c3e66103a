// Package migrations embeds the SQL migration files so they can be applied
// with the goose programmatic API at startup and in tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
