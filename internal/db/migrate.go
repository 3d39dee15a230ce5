package db

import (
	"context"

	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the database schema. The statements in schema.sql create
// the reference tables if they do not already exist.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
