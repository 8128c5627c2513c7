// Package migrations содержит схему каталога для goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
