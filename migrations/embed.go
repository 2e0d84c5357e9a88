// Package migrations embeds the goose SQL migrations so that the binary and
// the test helper apply the same schema without relying on file paths.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
