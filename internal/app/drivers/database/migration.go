package database

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationTable = "clinic_migrations"

func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate applies (or rolls back) at most max migrations; max 0 means all.
func Migrate(db *sql.DB, direction migrate.MigrationDirection, max int) (int, error) {
	migrate.SetTable(migrationTable)
	return migrate.ExecMax(db, "postgres", MigrationSource(), direction, max)
}

func PendingMigrations(db *sql.DB) ([]*migrate.PlannedMigration, error) {
	migrate.SetTable(migrationTable)
	planned, _, err := migrate.PlanMigration(db, "postgres", MigrationSource(), migrate.Up, 0)
	return planned, err
}
