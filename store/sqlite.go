package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lobziq/pdmafiadatabase/game"
	"github.com/lobziq/pdmafiadatabase/setting"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps records in a SQLite database. Each row carries the
// full record as JSON next to a few queryable columns.
type SQLiteStore struct {
	db    *sql.DB
	runID uuid.UUID
}

// NewSQLiteStore opens (or creates) the database at dbPath. Rows written
// through the store are tagged with runID.
func NewSQLiteStore(dbPath string, runID uuid.UUID) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db, runID: runID}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the settings and games tables if they don't exist.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		author TEXT NOT NULL,
		role_count INTEGER NOT NULL,
		data TEXT NOT NULL,
		run_id TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS games (
		external_id INTEGER PRIMARY KEY,
		local_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		setting_name TEXT NOT NULL,
		host TEXT NOT NULL,
		player_count INTEGER NOT NULL,
		data TEXT NOT NULL,
		run_id TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS games_setting_name ON games (setting_name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RunID returns the crawl run id stamped on written rows.
func (s *SQLiteStore) RunID() uuid.UUID {
	return s.runID
}

// SaveSetting inserts or replaces the setting with the same ID.
func (s *SQLiteStore) SaveSetting(st setting.Setting) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal setting %d: %w", st.ID, err)
	}

	query := `
		INSERT OR REPLACE INTO settings (
			id, name, author, role_count, data, run_id, saved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.Exec(query,
		st.ID,
		st.Name,
		st.Author,
		len(st.Roles),
		string(data),
		s.runID.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert setting %d: %w", st.ID, err)
	}

	return nil
}

// SaveGame inserts or replaces the game with the same external id.
func (s *SQLiteStore) SaveGame(g game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal game %d: %w", g.ExternalID, err)
	}

	query := `
		INSERT OR REPLACE INTO games (
			external_id, local_id, name, setting_name, host,
			player_count, data, run_id, saved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.Exec(query,
		g.ExternalID,
		g.LocalID,
		g.Name,
		g.SettingName,
		g.Host,
		len(g.Players),
		string(data),
		s.runID.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game %d: %w", g.ExternalID, err)
	}

	return nil
}

// ListSettings returns every stored setting ordered by ID.
func (s *SQLiteStore) ListSettings() (*ListResult[setting.Setting], error) {
	return queryAll[setting.Setting](s.db, "SELECT id, data FROM settings ORDER BY id")
}

// ListGames returns every stored game ordered by external id.
func (s *SQLiteStore) ListGames() (*ListResult[game.Game], error) {
	return queryAll[game.Game](s.db, "SELECT external_id, data FROM games ORDER BY external_id")
}

// queryAll decodes the JSON data column of every row returned by query.
// Rows whose data cannot be decoded are reported in Errors.
func queryAll[T any](db *sql.DB, query string) (*ListResult[T], error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	result := &ListResult[T]{Items: []T{}}
	for rows.Next() {
		var id int
		var data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		var item T
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			result.Errors = append(result.Errors, ReadError{Key: strconv.Itoa(id), Err: err})
			continue
		}
		result.Items = append(result.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return result, nil
}
