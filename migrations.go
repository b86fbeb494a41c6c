package cordely

import "embed"

// EmbedMigrations exposes the SQL migration files so binaries can run them
// without access to the source tree.
//
//go:embed migrations/*.sql
var EmbedMigrations embed.FS
