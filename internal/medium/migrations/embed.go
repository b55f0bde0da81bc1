// Package migrations embeds the goose migration files for the sqlite
// persistence medium.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
