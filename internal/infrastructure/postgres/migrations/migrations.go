// Package migrations embebe el esquema del backend remoto para goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
