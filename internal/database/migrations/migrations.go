// Package migrations embeds the schema for the Postgres content source and
// key/value storage.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
