// Package migrations embute os arquivos SQL do goose no binário.
package migrations

import "embed"

// FS contém as migrações versionadas (NNNNN_nome.sql).
//
//go:embed *.sql
var FS embed.FS
