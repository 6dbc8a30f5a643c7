package queue

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed schema_postgres.sql
var postgresSchemaSQL string

var postgresDialect = dialect{
	name:       "postgres",
	numbered:   true,
	lockClause: "FOR UPDATE SKIP LOCKED",
	encodeTime: func(t time.Time) any {
		return t.UTC()
	},
}

// OpenPostgresStore connects to Postgres using the DSN and ensures the table exists.
func OpenPostgresStore(ctx context.Context, dsn string, now func() time.Time) (*SQLStore, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is empty")
	}
	if now == nil {
		now = time.Now
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, postgresSchemaSQL); err != nil {
		pool.Close()
		return nil, err
	}

	return &SQLStore{
		db:      stdlib.OpenDBFromPool(pool),
		dialect: postgresDialect,
		now:     now,
		onClose: pool.Close,
	}, nil
}
