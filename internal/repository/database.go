package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/campushr/docparser/gen/ent"
	"github.com/campushr/docparser/internal/common"
)

// DBResult bundles an open database with its cleanup. Pool is nil for the
// in-memory variant.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens either an in-memory SQLite database (batch runs with no
// Postgres around) or the configured Postgres database, and for the in-memory
// case creates the schema.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		return initInMemory(ctx, logger)
	}

	entc, pool, err := Open(ctx, Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client: entc,
		Pool:   pool,
		Cleanup: func() {
			Close(entc, pool, logger)
		},
	}, nil
}

func initInMemory(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	db, err := sql.Open("sqlite", "file:docparser?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open in-memory database", "error", err)
		return nil, err
	}
	// cache=shared keeps the database alive across pooled connections, but
	// only while at least one is open
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		_ = client.Close()
		return nil, err
	}

	logger.Info("using in-memory SQLite database")
	return &DBResult{
		Client: client,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}
