package migrations

import "embed"

// FS holds the versioned schema so the binary can migrate without the source tree.
//
//go:embed postgres/*.sql
var FS embed.FS

const Dir = "postgres"
