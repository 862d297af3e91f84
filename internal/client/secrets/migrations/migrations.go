// Package migrations embeds the goose migrations for the local secret store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
