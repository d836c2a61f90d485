package main

import (
	"database/sql"
	"fmt"
)

// dbInit brings the schema up to the latest version. Each step runs once,
// tracked in db_version.
func dbInit(db *sql.DB) error {
	var dbVersion int
	err := db.QueryRow("SELECT version FROM db_version WHERE name='routinecal'").Scan(&dbVersion)
	if err != nil {
		_, err = db.Exec(`CREATE TABLE IF NOT EXISTS db_version (
			name TEXT PRIMARY KEY,
			version INTEGER
		)`)
		if err != nil {
			return fmt.Errorf("creating db_version table: %w", err)
		}
		_, err = db.Exec(`INSERT OR IGNORE INTO db_version (name, version) VALUES ('routinecal', 0)`)
		if err != nil {
			return fmt.Errorf("initializing db_version table: %w", err)
		}
		dbVersion = 0
	}

	if dbVersion == 0 {
		_, err = db.Exec(`CREATE TABLE IF NOT EXISTS tokens (
		account_name TEXT PRIMARY KEY,
		token TEXT)`)
		if err != nil {
			return fmt.Errorf("creating tokens table: %w", err)
		}

		_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT)`)
		if err != nil {
			return fmt.Errorf("creating kv table: %w", err)
		}

		dbVersion = 1
		if err := setDBVersion(db, dbVersion); err != nil {
			return err
		}
	}

	if dbVersion == 1 {
		_, err = db.Exec(`CREATE TABLE IF NOT EXISTS synced_events (
			routine_id INTEGER,
			calendar_id TEXT,
			event_id TEXT,
			provider TEXT,
			PRIMARY KEY (calendar_id, event_id)
		)`)
		if err != nil {
			return fmt.Errorf("creating synced_events table: %w", err)
		}

		dbVersion = 2
		if err := setDBVersion(db, dbVersion); err != nil {
			return err
		}
	}

	return nil
}

func setDBVersion(db *sql.DB, version int) error {
	_, err := db.Exec(`UPDATE db_version SET version = ? WHERE name = 'routinecal'`, version)
	if err != nil {
		return fmt.Errorf("updating db_version table: %w", err)
	}
	return nil
}
