package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ConnectSQLite opens a SQLite database in WAL mode. The busy timeout keeps
// the writer from failing immediately when the reader holds the lock.
func ConnectSQLite(path string) (*sql.DB, error) {
	return sql.Open("sqlite", fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=500&", path))
}
