package db

import (
	"context"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"beatforge/migrations"
)

// Migrate runs all pending migrations from the embedded filesystem.
// Must be called after InitDB.
func Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Printf("✓ Database migrations applied")
	return nil
}
