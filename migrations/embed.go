// Package migrations embeds the goose SQL migrations so the binary can
// apply its own schema.
package migrations

import "embed"

// FS holds every migration file
//
//go:embed *.sql
var FS embed.FS
