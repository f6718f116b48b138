package sqliteutil

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// OpenDB opens a sqlite database at path and applies the schema when
// the database is brand new. ":memory:" databases always get the
// schema.
func OpenDB(schema, path string) (*sql.DB, error) {
	fresh := path == ":memory:"
	if !fresh {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fresh = true
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if fresh {
		if _, err := database.Exec(schema); err != nil {
			database.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return database, nil
}
