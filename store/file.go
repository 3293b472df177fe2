package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/lobziq/pdmafiadatabase/game"
	"github.com/lobziq/pdmafiadatabase/setting"
)

const (
	settingsDir = "settings"
	gamesDir    = "games"
)

// FileStore keeps one JSON file per record under a storage directory:
// settings/<id>.json and games/<external_id>.json.
type FileStore struct {
	storageDir string
}

// NewFileStore creates a file store rooted at storageDir, creating the
// directories it needs.
func NewFileStore(storageDir string) (*FileStore, error) {
	for _, sub := range []string{settingsDir, gamesDir} {
		// 0700: owner-only access
		if err := os.MkdirAll(filepath.Join(storageDir, sub), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	return &FileStore{
		storageDir: storageDir,
	}, nil
}

// SaveSetting writes s to settings/<id>.json.
func (fs *FileStore) SaveSetting(s setting.Setting) error {
	return fs.write(settingsDir, s.ID, s)
}

// SaveGame writes g to games/<external_id>.json.
func (fs *FileStore) SaveGame(g game.Game) error {
	return fs.write(gamesDir, g.ExternalID, g)
}

func (fs *FileStore) write(dir string, id int, record any) error {
	filename := filepath.Join(fs.storageDir, dir, strconv.Itoa(id)+".json")

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record %d: %w", id, err)
	}

	// 0600: owner-only read/write
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("failed to write record %d: %w", id, err)
	}

	return nil
}

// ListSettings returns every stored setting ordered by ID.
func (fs *FileStore) ListSettings() (*ListResult[setting.Setting], error) {
	result, err := readAll[setting.Setting](filepath.Join(fs.storageDir, settingsDir))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(result.Items, func(a, b setting.Setting) int { return a.ID - b.ID })
	return result, nil
}

// ListGames returns every stored game ordered by ExternalID.
func (fs *FileStore) ListGames() (*ListResult[game.Game], error) {
	result, err := readAll[game.Game](filepath.Join(fs.storageDir, gamesDir))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(result.Items, func(a, b game.Game) int { return a.ExternalID - b.ExternalID })
	return result, nil
}

// Close is a no-op; FileStore holds no open resources.
func (fs *FileStore) Close() error {
	return nil
}

// readAll decodes every .json file in dir. Corrupted or unreadable files
// are collected in the result's Errors slice rather than failing the whole
// operation.
func readAll[T any](dir string) (*ListResult[T], error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	result := &ListResult[T]{Items: []T{}}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			result.Errors = append(result.Errors, ReadError{Key: entry.Name(), Err: err})
			continue
		}

		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			result.Errors = append(result.Errors, ReadError{Key: entry.Name(), Err: err})
			continue
		}

		result.Items = append(result.Items, item)
	}

	return result, nil
}
