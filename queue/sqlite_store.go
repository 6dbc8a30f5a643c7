package queue

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema_sqlite.sql
var sqliteSchemaSQL string

var sqliteDialect = dialect{
	name: "sqlite",
	encodeTime: func(t time.Time) any {
		return t.UnixMilli()
	},
}

// OpenSQLiteStore creates or opens the queue database at path.
//
// The connection pool is limited to one connection: SQLite has a single
// writer and the claim statements rely on it.
func OpenSQLiteStore(path string, now func() time.Time) (*SQLStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if now == nil {
		now = time.Now
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applySQLitePragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(sqliteSchemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLStore{db: db, dialect: sqliteDialect, now: now}, nil
}

func applySQLitePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
