// Package store persists extracted settings and games.
package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lobziq/pdmafiadatabase/game"
	"github.com/lobziq/pdmafiadatabase/setting"
)

// Store types accepted by Open.
const (
	TypeFile   = "file"
	TypeSQLite = "sqlite"
)

// Store saves and lists records. Saving a record whose key already exists
// replaces it. Settings are keyed by ID, games by ExternalID.
type Store interface {
	SaveSetting(s setting.Setting) error
	SaveGame(g game.Game) error
	ListSettings() (*ListResult[setting.Setting], error)
	ListGames() (*ListResult[game.Game], error)
	Close() error
}

// ReadError describes a failure to read a single stored record.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

// ListResult contains the results of listing records, including any
// per-record errors that occurred during the operation.
type ListResult[T any] struct {
	Items  []T
	Errors []ReadError
}

// Open returns the store of the given type. dsn is a directory for file
// stores and a database path for SQLite. runID tags SQLite rows with the
// crawl run that wrote them.
func Open(storeType, dsn string, runID uuid.UUID) (Store, error) {
	switch storeType {
	case TypeFile, "":
		return NewFileStore(dsn)
	case TypeSQLite:
		return NewSQLiteStore(dsn, runID)
	default:
		return nil, fmt.Errorf("unknown store type %q (want %s or %s)", storeType, TypeFile, TypeSQLite)
	}
}
