// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Base tables: users, health_records, fitness_activities, calendar_events.
package storage

// initSchema creates the base tables. Timestamps default to the store's
// own clock so recorded_at ordering is consistent regardless of caller.
// The medications tables are created by Migrate; they shipped after the
// initial release and follow the additive migration path.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS health_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		value TEXT NOT NULL,
		notes TEXT,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	);

	CREATE TABLE IF NOT EXISTS fitness_activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		activity_type TEXT NOT NULL,
		duration INTEGER,
		distance REAL,
		calories INTEGER,
		notes TEXT,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	);

	CREATE TABLE IF NOT EXISTS calendar_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		event_date TEXT NOT NULL,
		time TEXT,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	);

	CREATE INDEX IF NOT EXISTS idx_health_records_user_recorded ON health_records(user_id, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_fitness_activities_user_recorded ON fitness_activities(user_id, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_calendar_events_user_date ON calendar_events(user_id, event_date);
	`

	_, err := d.db.Exec(schema)
	return err
}
