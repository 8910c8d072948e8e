package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/petarmilev/invoice-recon/gen/ent"
	"github.com/petarmilev/invoice-recon/internal/common"
)

// DatabaseResult bundles an open ent client with its cleanup function.
type DatabaseResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an
// in-memory SQLite database (for the CLI tools and tests). The SQLite path
// also creates the schema, since there is no migration step for a
// throwaway database.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*DatabaseResult, error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:invoicerecon?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, common.WrapError(err, "open sqlite")
		}
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, common.WrapError(err, "create sqlite schema")
		}
		logger.Info("using in-memory sqlite database")
		return &DatabaseResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := Open(ctx, Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DatabaseResult{
		Client: client,
		Cleanup: func() {
			Close(client, pool, logger)
		},
	}, nil
}
