// Package mirrorbot holds the assets embedded into the binary and shared by
// the subcommands.
package mirrorbot

import "embed"

// Migrations holds the goose migration files applied by the migrate subcommand.
//
//go:embed migrations/*.sql
var Migrations embed.FS
