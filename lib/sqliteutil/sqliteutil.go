package sqliteutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var remoteSchemes = []string{"libsql://", "http://", "https://", "ws://", "wss://"}

// OpenDB opens dsn, applies schema and returns the handle. Remote
// libsql urls (with an optional ?authToken=... query) go through the
// libsql driver, everything else is treated as a local sqlite file.
// The caller's db package is expected to blank-import both drivers.
func OpenDB(schema, dsn string) (*sql.DB, error) {
	driver := "sqlite"
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(dsn, scheme) {
			driver = "libsql"
			break
		}
	}

	if driver == "sqlite" && dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			err := os.MkdirAll(dir, 0777)
			if err != nil {
				return nil, fmt.Errorf("open db: %w", err)
			}
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	if driver == "sqlite" {
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("open db: %w", err)
		}
	}

	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}
