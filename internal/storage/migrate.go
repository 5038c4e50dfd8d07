// ABOUTME: Additive schema migrations for tables added after initial release.
// ABOUTME: Probes sqlite_master by table name; never drops or alters.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const medicationsSchema = `
CREATE TABLE IF NOT EXISTS medications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	dosage TEXT NOT NULL,
	frequency TEXT NOT NULL,
	times TEXT,
	notes TEXT,
	active INTEGER DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS medication_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	medication_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	taken_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	notes TEXT,
	FOREIGN KEY (medication_id) REFERENCES medications (id),
	FOREIGN KEY (user_id) REFERENCES users (id)
);

CREATE INDEX IF NOT EXISTS idx_medications_user_name ON medications(user_id, name);
CREATE INDEX IF NOT EXISTS idx_medication_logs_medication ON medication_logs(medication_id);
CREATE INDEX IF NOT EXISTS idx_medication_logs_user_taken ON medication_logs(user_id, taken_at DESC);
`

// Migrate applies additive migrations. Idempotent: a table that already
// exists is left untouched, existing rows included.
func (d *DB) Migrate() error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	exists, err := d.tableExists("medications")
	if err != nil {
		return fmt.Errorf("check medications table: %w", err)
	}
	if exists {
		return nil
	}

	d.log.Info("creating medications tables")
	if _, err := conn.Exec(medicationsSchema); err != nil {
		return fmt.Errorf("create medications tables: %w", err)
	}
	d.log.Info("medications tables created", zap.String("db", d.dbPath))
	return nil
}

// tableExists checks the catalog for a table by name.
func (d *DB) tableExists(name string) (bool, error) {
	conn, err := d.handle()
	if err != nil {
		return false, err
	}

	var found string
	err = conn.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
