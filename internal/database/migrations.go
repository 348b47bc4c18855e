package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Schema migrations, applied in version order and tracked in the migrations
// table. Derived scores are intentionally absent from the leads table: they
// are recomputed from the counters on every read.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_leads",
		SQL: `
			CREATE TABLE IF NOT EXISTS leads (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT DEFAULT '',
				university_id TEXT NOT NULL,
				university_name TEXT NOT NULL,
				graduation_year INTEGER NOT NULL,
				major TEXT DEFAULT '',
				position TEXT DEFAULT '',
				company TEXT DEFAULT '',
				city TEXT DEFAULT '',
				country TEXT DEFAULT '',
				latitude REAL NOT NULL DEFAULT 0,
				longitude REAL NOT NULL DEFAULT 0,
				ad_clicks INTEGER NOT NULL DEFAULT 0,
				ad_impressions INTEGER NOT NULL DEFAULT 0,
				roadmap_views INTEGER NOT NULL DEFAULT 0,
				roadmap_generated INTEGER NOT NULL DEFAULT 0,
				mentor_connections INTEGER NOT NULL DEFAULT 0,
				login_frequency INTEGER NOT NULL DEFAULT 0,
				event_attendance INTEGER NOT NULL DEFAULT 0,
				group_memberships INTEGER NOT NULL DEFAULT 0,
				posts_interacted INTEGER NOT NULL DEFAULT 0,
				last_active_at INTEGER NOT NULL DEFAULT 0,
				created_at INTEGER NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_leads_university ON leads(university_id);
			CREATE INDEX IF NOT EXISTS idx_leads_coords ON leads(latitude, longitude);
			CREATE INDEX IF NOT EXISTS idx_leads_last_active ON leads(last_active_at);
		`,
	},
	{
		Version: 2,
		Name:    "create_panel_state",
		SQL: `
			CREATE TABLE IF NOT EXISTS panel_state (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db *sql.DB
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *sql.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

// InitMigrationsTable creates the migrations tracking table
func (m *MigrationManager) InitMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := m.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// GetAppliedMigrations returns a list of applied migration versions
func (m *MigrationManager) GetAppliedMigrations() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

// ApplyMigration applies a single migration
func (m *MigrationManager) ApplyMigration(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	// Execute migration SQL
	_, err = tx.Exec(migration.SQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
	}

	// Record migration
	_, err = tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", migration.Version, migration.Name)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
	}

	log.Printf("Applied migration %d: %s", migration.Version, migration.Name)
	return nil
}

// RunMigrations runs all pending migrations
func (m *MigrationManager) RunMigrations() error {
	if err := m.InitMigrationsTable(); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}

		if err := m.ApplyMigration(migration); err != nil {
			return err
		}
	}

	return nil
}
