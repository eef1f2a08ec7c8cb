package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SQLiteFileName is the database file used when the sqlite driver is given
// a directory
const SQLiteFileName = "ba-career-quest.db"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the backend named by driver. The closer releases the
// backend's resources and is never nil.
func Open(driver, path string) (Store, io.Closer, error) {
	switch driver {
	case "memory":
		return NewMemoryStore(), nopCloser{}, nil
	case "", "file":
		fs, err := NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return fs, nopCloser{}, nil
	case "sqlite":
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, SQLiteFileName)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create directory: %w", err)
		}
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
