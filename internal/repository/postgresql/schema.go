package postgresql

import (
	"context"
	"fmt"

	"github.com/officehub/officehub-backend-go/internal/pkg/database"
)

// The store is three document collections: one JSONB doc per entity,
// keyed by the entity's own id. Statement-level triggers NOTIFY on the
// shared channel so the change feed can re-read whole collections.
var bootstrapStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS work_types (
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS work_records (
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_username ON users ((doc->>'username'))`,
	`CREATE INDEX IF NOT EXISTS idx_work_records_work_type ON work_records ((doc->>'workTypeId'))`,
	`CREATE OR REPLACE FUNCTION notify_collection_change() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify('` + changeChannel + `', TG_TABLE_NAME);
		RETURN NULL;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS users_notify_change ON users`,
	`CREATE TRIGGER users_notify_change
		AFTER INSERT OR UPDATE OR DELETE ON users
		FOR EACH STATEMENT EXECUTE FUNCTION notify_collection_change()`,
	`DROP TRIGGER IF EXISTS work_types_notify_change ON work_types`,
	`CREATE TRIGGER work_types_notify_change
		AFTER INSERT OR UPDATE OR DELETE ON work_types
		FOR EACH STATEMENT EXECUTE FUNCTION notify_collection_change()`,
	`DROP TRIGGER IF EXISTS work_records_notify_change ON work_records`,
	`CREATE TRIGGER work_records_notify_change
		AFTER INSERT OR UPDATE OR DELETE ON work_records
		FOR EACH STATEMENT EXECUTE FUNCTION notify_collection_change()`,
}

// Bootstrap creates the document tables and notify triggers. Safe to run
// on every startup.
func Bootstrap(ctx context.Context, db *database.DB) error {
	for _, stmt := range bootstrapStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
