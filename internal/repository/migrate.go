package repository

import (
	"context"
	_ "embed"
	"fmt"
)

var (
	//go:embed migrations/schema.sql
	schemaSQL string
	//go:embed migrations/seed.sql
	seedSQL string
)

// Migrate creates the employee table when it does not exist yet.
// When seed is true it also loads the demo employees (ids 1-20) that are not already present
// and moves the id sequence past them.
func Migrate(ctx context.Context, db Database, seed bool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if !seed {
		return nil
	}

	if _, err := db.Exec(ctx, seedSQL); err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	return nil
}
