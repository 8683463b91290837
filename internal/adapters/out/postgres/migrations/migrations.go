// Package migrations embeds the SQL migrations owned by this service.
// Only the delivery ledger is managed here; the order tables belong to the
// order system.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
