package repository

import _ "embed"

// Schema creates the holidays table and its unique occurs_at index. It is
// idempotent.
//
//go:embed schema.sql
var Schema string
