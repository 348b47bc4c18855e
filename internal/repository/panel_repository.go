package repository

import (
	"database/sql"
	"fmt"
)

// PanelRepository persists admin panel state as key/value JSON blobs. It
// stands behind the same get/set contract the panels previously expected from
// browser storage, so the backing store can change without touching them.
type PanelRepository struct {
	db *sql.DB
}

// NewPanelRepository creates a new panel state repository
func NewPanelRepository(db *sql.DB) *PanelRepository {
	return &PanelRepository{db: db}
}

// Get returns the stored value for a key, or sql.ErrNoRows when absent
func (r *PanelRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM panel_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("failed to get panel state %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value under a key, replacing any previous value
func (r *PanelRepository) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO panel_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set panel state %s: %w", key, err)
	}
	return nil
}
