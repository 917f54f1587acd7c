package mangoadvisory

import "embed"

// Migrations holds the embedded SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
