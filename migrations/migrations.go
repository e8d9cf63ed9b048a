package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

// Latest is the goose version of the newest migration in this directory.
const Latest int64 = 2
